package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/autopress-api/internal/database"
	"github.com/autopress-api/internal/models"
)

// siteRepo is the concrete implementation of SiteRepository
type siteRepo struct {
	db *database.DB
}

// NewSiteRepo creates a new site repository
func NewSiteRepo(db *database.DB) SiteRepository {
	return &siteRepo{db: db}
}

// Create inserts a new site
func (r *siteRepo) Create(ctx context.Context, site *models.Site) error {
	query := `
		INSERT INTO sites (id, user_id, name, url, username, password, active, last_status, last_tested_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		site.ID, site.UserID, site.Name, site.URL, site.Username, site.Password,
		site.Active, site.LastStatus, site.LastTestedAt, site.CreatedAt, time.Now(),
	)
	return err
}

// Update replaces the mutable fields of a site
func (r *siteRepo) Update(ctx context.Context, site *models.Site) error {
	query := `
		UPDATE sites
		SET name = $1, url = $2, username = $3, password = $4, active = $5,
		    last_status = $6, last_tested_at = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`
	_, err := r.db.ExecContext(ctx, query,
		site.Name, site.URL, site.Username, site.Password, site.Active,
		site.LastStatus, site.LastTestedAt, time.Now(), site.ID, site.UserID,
	)
	return err
}

// UpdateStatus records the outcome of a connection test
func (r *siteRepo) UpdateStatus(ctx context.Context, id string, status models.SiteStatus) error {
	query := `UPDATE sites SET last_status = $1, last_tested_at = $2, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

// Delete removes a site; returns false when no row matched
func (r *siteRepo) Delete(ctx context.Context, id, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sites WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

// GetByID retrieves a site scoped to its owner
func (r *siteRepo) GetByID(ctx context.Context, id, userID string) (*models.Site, error) {
	query := `
		SELECT id, user_id, name, url, username, password, active, last_status, last_tested_at, created_at, updated_at
		FROM sites WHERE id = $1 AND user_id = $2
	`
	var site models.Site
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&site.ID, &site.UserID, &site.Name, &site.URL, &site.Username, &site.Password,
		&site.Active, &site.LastStatus, &site.LastTestedAt, &site.CreatedAt, &site.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &site, nil
}

// ListByUser retrieves all sites owned by a user
func (r *siteRepo) ListByUser(ctx context.Context, userID string) ([]*models.Site, error) {
	query := `
		SELECT id, user_id, name, url, username, password, active, last_status, last_tested_at, created_at, updated_at
		FROM sites WHERE user_id = $1 ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*models.Site
	for rows.Next() {
		var site models.Site
		err := rows.Scan(
			&site.ID, &site.UserID, &site.Name, &site.URL, &site.Username, &site.Password,
			&site.Active, &site.LastStatus, &site.LastTestedAt, &site.CreatedAt, &site.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sites = append(sites, &site)
	}
	return sites, rows.Err()
}
