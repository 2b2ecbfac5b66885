package models

import (
	"time"
)

// PostStatus represents the lifecycle state of a generated post record
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusFailed    PostStatus = "failed"
)

// Post is a locally stored content record, generated or hand-written,
// that may later be published to a WordPress site
type Post struct {
	ID              string     `json:"id" db:"id"`
	UserID          string     `json:"user_id" db:"user_id"`
	Title           string     `json:"title" db:"title"`
	Content         string     `json:"content" db:"content"`
	Excerpt         string     `json:"excerpt" db:"excerpt"`
	MetaDescription string     `json:"meta_description" db:"meta_description"`
	Keyword         string     `json:"keyword" db:"keyword"`
	Status          PostStatus `json:"status" db:"status"`
	SiteID          string     `json:"site_id,omitempty" db:"site_id"`
	RemotePostID    int        `json:"remote_post_id,omitempty" db:"remote_post_id"`
	RemoteURL       string     `json:"remote_url,omitempty" db:"remote_url"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// PublishRequest asks for a stored post to be pushed to a site
type PublishRequest struct {
	SiteID           string     `json:"site_id"`
	Status           string     `json:"status"` // draft, publish, private, future
	Categories       []string   `json:"categories,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	FeaturedImageURL string     `json:"featured_image_url,omitempty"`
	PublishAt        *time.Time `json:"publish_at,omitempty"`
}

// PostUpdateRequest carries editable post record fields
type PostUpdateRequest struct {
	Title           *string `json:"title,omitempty"`
	Content         *string `json:"content,omitempty"`
	Excerpt         *string `json:"excerpt,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
}

// PostStatistics summarizes a user's post records
type PostStatistics struct {
	Total     int `json:"total"`
	Draft     int `json:"draft"`
	Published int `json:"published"`
	Scheduled int `json:"scheduled"`
	Failed    int `json:"failed"`
}
