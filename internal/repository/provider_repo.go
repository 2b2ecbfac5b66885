package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/autopress-api/internal/database"
	"github.com/autopress-api/internal/models"
)

// providerRepo is the concrete implementation of ProviderRepository
type providerRepo struct {
	db *database.DB
}

// NewProviderRepo creates a new provider repository
func NewProviderRepo(db *database.DB) ProviderRepository {
	return &providerRepo{db: db}
}

// Create inserts a new provider config
func (r *providerRepo) Create(ctx context.Context, provider *models.Provider) error {
	query := `
		INSERT INTO llm_providers (id, user_id, name, provider, api_key, model, base_url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		provider.ID, provider.UserID, provider.Name, provider.Provider, provider.APIKey,
		provider.Model, provider.BaseURL, provider.Active, provider.CreatedAt, time.Now(),
	)
	return err
}

// Update replaces the mutable fields of a provider config
func (r *providerRepo) Update(ctx context.Context, provider *models.Provider) error {
	query := `
		UPDATE llm_providers
		SET name = $1, provider = $2, api_key = $3, model = $4, base_url = $5, active = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
	`
	_, err := r.db.ExecContext(ctx, query,
		provider.Name, provider.Provider, provider.APIKey, provider.Model, provider.BaseURL,
		provider.Active, time.Now(), provider.ID, provider.UserID,
	)
	return err
}

// Delete removes a provider config; returns false when no row matched
func (r *providerRepo) Delete(ctx context.Context, id, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM llm_providers WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

// GetByID retrieves a provider config scoped to its owner
func (r *providerRepo) GetByID(ctx context.Context, id, userID string) (*models.Provider, error) {
	query := `
		SELECT id, user_id, name, provider, api_key, model, base_url, active, created_at, updated_at
		FROM llm_providers WHERE id = $1 AND user_id = $2
	`
	var p models.Provider
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Provider, &p.APIKey, &p.Model, &p.BaseURL,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// GetActive retrieves the user's active provider config, newest first
func (r *providerRepo) GetActive(ctx context.Context, userID string) (*models.Provider, error) {
	query := `
		SELECT id, user_id, name, provider, api_key, model, base_url, active, created_at, updated_at
		FROM llm_providers WHERE user_id = $1 AND active = true
		ORDER BY updated_at DESC LIMIT 1
	`
	var p models.Provider
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Provider, &p.APIKey, &p.Model, &p.BaseURL,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// ListByUser retrieves all provider configs owned by a user
func (r *providerRepo) ListByUser(ctx context.Context, userID string) ([]*models.Provider, error) {
	query := `
		SELECT id, user_id, name, provider, api_key, model, base_url, active, created_at, updated_at
		FROM llm_providers WHERE user_id = $1 ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []*models.Provider
	for rows.Next() {
		var p models.Provider
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Provider, &p.APIKey, &p.Model, &p.BaseURL,
			&p.Active, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		providers = append(providers, &p)
	}
	return providers, rows.Err()
}
