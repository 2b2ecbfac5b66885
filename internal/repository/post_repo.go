package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/autopress-api/internal/database"
	"github.com/autopress-api/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

// Create inserts a new post record
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, user_id, title, content, excerpt, meta_description, keyword, status,
		                   site_id, remote_post_id, remote_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.UserID, post.Title, post.Content, post.Excerpt, post.MetaDescription,
		post.Keyword, post.Status, nullable(post.SiteID), post.RemotePostID, post.RemoteURL,
		post.CreatedAt, time.Now(),
	)
	return err
}

// Update replaces the mutable fields of a post record
func (r *postRepo) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, excerpt = $3, meta_description = $4, status = $5,
		    site_id = $6, remote_post_id = $7, remote_url = $8, updated_at = $9
		WHERE id = $10 AND user_id = $11
	`
	_, err := r.db.ExecContext(ctx, query,
		post.Title, post.Content, post.Excerpt, post.MetaDescription, post.Status,
		nullable(post.SiteID), post.RemotePostID, post.RemoteURL, time.Now(),
		post.ID, post.UserID,
	)
	return err
}

// Delete removes a post record; returns false when no row matched
func (r *postRepo) Delete(ctx context.Context, id, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

// GetByID retrieves a post record scoped to its owner
func (r *postRepo) GetByID(ctx context.Context, id, userID string) (*models.Post, error) {
	query := `
		SELECT id, user_id, title, content, excerpt, meta_description, keyword, status,
		       site_id, remote_post_id, remote_url, created_at, updated_at
		FROM posts WHERE id = $1 AND user_id = $2
	`
	var post models.Post
	var siteID sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&post.ID, &post.UserID, &post.Title, &post.Content, &post.Excerpt, &post.MetaDescription,
		&post.Keyword, &post.Status, &siteID, &post.RemotePostID, &post.RemoteURL,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	post.SiteID = siteID.String

	return &post, nil
}

// ListByUser retrieves a user's post records, newest first, optionally
// filtered by status
func (r *postRepo) ListByUser(ctx context.Context, userID, status string, limit int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_id, title, content, excerpt, meta_description, keyword, status,
		       site_id, remote_post_id, remote_url, created_at, updated_at
		FROM posts WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		var siteID sql.NullString
		err := rows.Scan(
			&post.ID, &post.UserID, &post.Title, &post.Content, &post.Excerpt, &post.MetaDescription,
			&post.Keyword, &post.Status, &siteID, &post.RemotePostID, &post.RemoteURL,
			&post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		post.SiteID = siteID.String
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// Statistics counts a user's post records by status
func (r *postRepo) Statistics(ctx context.Context, userID string) (*models.PostStatistics, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE status = 'published'),
			COUNT(*) FILTER (WHERE status = 'scheduled'),
			COUNT(*) FILTER (WHERE status = 'failed')
		FROM posts WHERE user_id = $1
	`
	var stats models.PostStatistics
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.Total, &stats.Draft, &stats.Published, &stats.Scheduled, &stats.Failed,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// nullable maps an empty string to NULL for optional FK columns
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
