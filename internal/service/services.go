package service

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/config"
	"github.com/autopress-api/internal/llm"
	"github.com/autopress-api/internal/repository"
	"github.com/autopress-api/internal/wordpress"
)

// Sentinel errors mapped to HTTP statuses by the API layer
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrConnectionFailed   = errors.New("connection test failed")
	ErrNoProvider         = errors.New("no llm provider configured")
)

// Connector builds a publishing adapter for one site's stored credentials
type Connector func(url, username, password string) *wordpress.Client

// Services holds all business logic services
type Services struct {
	Auth     *AuthService
	Site     *SiteService
	Provider *ProviderService
	Content  *ContentService
	Post     *PostService
	Settings *SettingsService
}

// NewServices creates all services with their dependencies
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	connector := func(url, username, password string) *wordpress.Client {
		return wordpress.NewClient(url, username, password,
			wordpress.WithLogger(log),
			wordpress.WithTimeouts(cfg.WordPress.ProbeTimeout, cfg.WordPress.WriteTimeout),
			wordpress.WithRetryBackoff(cfg.WordPress.RetryBackoff),
		)
	}

	return &Services{
		Auth:     NewAuthService(repos.User, cfg.Auth, log),
		Site:     NewSiteService(repos.Site, connector, log),
		Provider: NewProviderService(repos.Provider, log),
		Content:  NewContentService(repos.Post, repos.Provider, cfg.LLM, llm.NewFromProvider, log),
		Post:     NewPostService(repos.Post, repos.Site, connector, log),
		Settings: NewSettingsService(repos.Settings, log),
	}
}
