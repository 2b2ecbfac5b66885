package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/repository"
)

// validThemes are the accepted interface themes
var validThemes = map[string]bool{
	"light":  true,
	"dark":   true,
	"system": true,
}

// SettingsService manages per-user preferences
type SettingsService struct {
	settings repository.SettingsRepository
	log      zerolog.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(settings repository.SettingsRepository, log zerolog.Logger) *SettingsService {
	return &SettingsService{
		settings: settings,
		log:      log.With().Str("component", "settings-service").Logger(),
	}
}

// Get returns the user's stored settings, or the defaults when nothing has
// been saved yet
func (s *SettingsService) Get(ctx context.Context, userID string) (*models.Settings, error) {
	stored, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if stored == nil {
		return models.DefaultSettings(userID), nil
	}
	return stored, nil
}

// Update applies a partial change on top of the current settings and
// persists the result
func (s *SettingsService) Update(ctx context.Context, userID string, req *models.SettingsUpdateRequest) (*models.Settings, error) {
	if err := validateSettingsUpdate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		current.Theme = *req.Theme
	}
	if req.Language != nil {
		current.Language = *req.Language
	}
	if req.Notifications != nil {
		current.Notifications = *req.Notifications
	}
	if req.AutoSave != nil {
		current.AutoSave = *req.AutoSave
	}
	if req.DefaultContentType != nil {
		current.DefaultContentType = *req.DefaultContentType
	}
	if req.DefaultTone != nil {
		current.DefaultTone = *req.DefaultTone
	}
	if req.DefaultWordCount != nil {
		current.DefaultWordCount = *req.DefaultWordCount
	}

	if err := s.settings.Upsert(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.log.Info().Str("user_id", userID).Msg("Settings updated")
	return current, nil
}

// Reset restores the user's settings to the defaults
func (s *SettingsService) Reset(ctx context.Context, userID string) (*models.Settings, error) {
	defaults := models.DefaultSettings(userID)
	if err := s.settings.Upsert(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to reset settings: %w", err)
	}

	s.log.Info().Str("user_id", userID).Msg("Settings reset to defaults")
	return defaults, nil
}

func validateSettingsUpdate(req *models.SettingsUpdateRequest) error {
	if req.Theme != nil && !validThemes[*req.Theme] {
		return fmt.Errorf("theme must be one of light, dark, system")
	}
	if req.Language != nil && *req.Language == "" {
		return fmt.Errorf("language cannot be empty")
	}
	if req.DefaultWordCount != nil && *req.DefaultWordCount < 100 {
		return fmt.Errorf("default word count must be at least 100")
	}
	return nil
}
