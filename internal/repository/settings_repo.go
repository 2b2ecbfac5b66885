package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/autopress-api/internal/database"
	"github.com/autopress-api/internal/models"
)

// settingsRepo is the concrete implementation of SettingsRepository
type settingsRepo struct {
	db *database.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *database.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

// Get retrieves a user's stored settings; nil when nothing was ever saved
func (r *settingsRepo) Get(ctx context.Context, userID string) (*models.Settings, error) {
	query := `
		SELECT user_id, theme, language, notifications, auto_save,
		       default_content_type, default_tone, default_word_count, updated_at
		FROM user_settings WHERE user_id = $1
	`
	var s models.Settings
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.Theme, &s.Language, &s.Notifications, &s.AutoSave,
		&s.DefaultContentType, &s.DefaultTone, &s.DefaultWordCount, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Upsert inserts or replaces the user's settings row
func (r *settingsRepo) Upsert(ctx context.Context, s *models.Settings) error {
	query := `
		INSERT INTO user_settings (user_id, theme, language, notifications, auto_save,
		                           default_content_type, default_tone, default_word_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			theme = EXCLUDED.theme,
			language = EXCLUDED.language,
			notifications = EXCLUDED.notifications,
			auto_save = EXCLUDED.auto_save,
			default_content_type = EXCLUDED.default_content_type,
			default_tone = EXCLUDED.default_tone,
			default_word_count = EXCLUDED.default_word_count,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		s.UserID, s.Theme, s.Language, s.Notifications, s.AutoSave,
		s.DefaultContentType, s.DefaultTone, s.DefaultWordCount, time.Now(),
	)
	return err
}
