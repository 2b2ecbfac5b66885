package repository

import (
	"context"

	"github.com/autopress-api/internal/database"
	"github.com/autopress-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// SiteRepository defines the interface for WordPress site storage
type SiteRepository interface {
	Create(ctx context.Context, site *models.Site) error
	Update(ctx context.Context, site *models.Site) error
	UpdateStatus(ctx context.Context, id string, status models.SiteStatus) error
	Delete(ctx context.Context, id, userID string) (bool, error)
	GetByID(ctx context.Context, id, userID string) (*models.Site, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Site, error)
}

// PostRepository defines the interface for generated post records
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id, userID string) (bool, error)
	GetByID(ctx context.Context, id, userID string) (*models.Post, error)
	ListByUser(ctx context.Context, userID, status string, limit int) ([]*models.Post, error)
	Statistics(ctx context.Context, userID string) (*models.PostStatistics, error)
}

// ProviderRepository defines the interface for LLM provider configs
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	Update(ctx context.Context, provider *models.Provider) error
	Delete(ctx context.Context, id, userID string) (bool, error)
	GetByID(ctx context.Context, id, userID string) (*models.Provider, error)
	GetActive(ctx context.Context, userID string) (*models.Provider, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Provider, error)
}

// SettingsRepository defines the interface for per-user settings storage
type SettingsRepository interface {
	Get(ctx context.Context, userID string) (*models.Settings, error)
	Upsert(ctx context.Context, settings *models.Settings) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	User     UserRepository
	Site     SiteRepository
	Post     PostRepository
	Provider ProviderRepository
	Settings SettingsRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepo(db),
		Site:     NewSiteRepo(db),
		Post:     NewPostRepo(db),
		Provider: NewProviderRepo(db),
		Settings: NewSettingsRepo(db),
	}
}
