package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/repository"
	"github.com/autopress-api/internal/wordpress"
)

// PostService manages stored post records and their publication to
// registered WordPress sites
type PostService struct {
	posts   repository.PostRepository
	sites   repository.SiteRepository
	connect Connector
	log     zerolog.Logger
}

// NewPostService creates a new post service
func NewPostService(posts repository.PostRepository, sites repository.SiteRepository, connect Connector, log zerolog.Logger) *PostService {
	return &PostService{
		posts:   posts,
		sites:   sites,
		connect: connect,
		log:     log.With().Str("component", "post-service").Logger(),
	}
}

// Get returns one stored post record
func (s *PostService) Get(ctx context.Context, userID, id string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// List returns the user's post records, optionally filtered by status
func (s *PostService) List(ctx context.Context, userID, status string, limit int) ([]*models.Post, error) {
	posts, err := s.posts.ListByUser(ctx, userID, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Update edits the editable fields of a stored post record
func (s *PostService) Update(ctx context.Context, userID, id string, req *models.PostUpdateRequest) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.MetaDescription != nil {
		post.MetaDescription = *req.MetaDescription
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// Delete removes a stored post record
func (s *PostService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.posts.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Statistics summarizes the user's post records by status
func (s *PostService) Statistics(ctx context.Context, userID string) (*models.PostStatistics, error) {
	stats, err := s.posts.Statistics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}
	return stats, nil
}

// Publish pushes a stored post to one of the user's registered sites. A
// publish_at timestamp schedules the post instead of publishing it
// immediately. The record tracks the outcome either way: remote id and url
// on success, failed status on error.
func (s *PostService) Publish(ctx context.Context, userID, postID string, req *models.PublishRequest) (*wordpress.PublishResult, error) {
	if req.PublishAt != nil && !req.PublishAt.After(time.Now()) {
		return nil, fmt.Errorf("%w: publish date must be in the future", ErrInvalidInput)
	}

	post, err := s.posts.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}

	site, err := s.sites.GetByID(ctx, req.SiteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	if site == nil {
		return nil, ErrNotFound
	}

	status := req.Status
	if status == "" {
		status = "publish"
	}
	wpPost := &wordpress.Post{
		Title:            post.Title,
		Content:          post.Content,
		Status:           status,
		Excerpt:          post.Excerpt,
		MetaDescription:  post.MetaDescription,
		Categories:       req.Categories,
		Tags:             req.Tags,
		FeaturedImageURL: req.FeaturedImageURL,
	}

	client := s.connect(site.URL, site.Username, site.Password)

	var result *wordpress.PublishResult
	if req.PublishAt != nil {
		result, err = client.SchedulePost(ctx, wpPost, *req.PublishAt)
	} else {
		result, err = client.CreatePost(ctx, wpPost)
	}
	if err != nil {
		post.Status = models.PostStatusFailed
		post.SiteID = site.ID
		if updErr := s.posts.Update(ctx, post); updErr != nil {
			s.log.Warn().Err(updErr).Str("post_id", post.ID).Msg("Failed to record publish failure")
		}
		return nil, err
	}

	post.SiteID = site.ID
	post.RemotePostID = result.RemoteID
	post.RemoteURL = result.URL
	if req.PublishAt != nil {
		post.Status = models.PostStatusScheduled
	} else {
		post.Status = models.PostStatusPublished
	}
	if err := s.posts.Update(ctx, post); err != nil {
		s.log.Warn().Err(err).Str("post_id", post.ID).Msg("Published remotely but failed to update record")
	}

	s.log.Info().
		Str("post_id", post.ID).
		Str("site_id", site.ID).
		Int("remote_id", result.RemoteID).
		Str("method", result.Method).
		Msg("Post published")
	return result, nil
}

// RemotePosts lists posts directly from a registered site
func (s *PostService) RemotePosts(ctx context.Context, userID, siteID, status string, limit int) ([]wordpress.PostSummary, error) {
	site, err := s.sites.GetByID(ctx, siteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	if site == nil {
		return nil, ErrNotFound
	}

	client := s.connect(site.URL, site.Username, site.Password)
	return client.ListPosts(ctx, status, limit)
}

// UpdateRemote edits a post directly on a registered site
func (s *PostService) UpdateRemote(ctx context.Context, userID, siteID string, remoteID int, fields wordpress.UpdateFields) (*wordpress.PublishResult, error) {
	site, err := s.sites.GetByID(ctx, siteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	if site == nil {
		return nil, ErrNotFound
	}

	client := s.connect(site.URL, site.Username, site.Password)
	return client.UpdatePost(ctx, remoteID, fields)
}

// DeleteRemote removes a post directly from a registered site
func (s *PostService) DeleteRemote(ctx context.Context, userID, siteID string, remoteID int, force bool) error {
	site, err := s.sites.GetByID(ctx, siteID, userID)
	if err != nil {
		return fmt.Errorf("failed to get site: %w", err)
	}
	if site == nil {
		return ErrNotFound
	}

	client := s.connect(site.URL, site.Username, site.Password)
	return client.DeletePost(ctx, remoteID, force)
}
