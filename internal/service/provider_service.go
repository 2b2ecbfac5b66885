package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/repository"
)

// ProviderService manages stored LLM provider configurations
type ProviderService struct {
	providers repository.ProviderRepository
	log       zerolog.Logger
}

// NewProviderService creates a new provider service
func NewProviderService(providers repository.ProviderRepository, log zerolog.Logger) *ProviderService {
	return &ProviderService{
		providers: providers,
		log:       log.With().Str("component", "provider-service").Logger(),
	}
}

// Create stores a new provider config. API keys only ever leave this layer
// masked.
func (s *ProviderService) Create(ctx context.Context, userID string, req *models.ProviderRequest) (*models.ProviderView, error) {
	if err := validateProviderRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	provider := &models.Provider{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      req.Name,
		Provider:  req.Provider,
		APIKey:    req.APIKey,
		Model:     req.Model,
		BaseURL:   strings.TrimSpace(req.BaseURL),
		Active:    req.Active,
		CreatedAt: time.Now(),
	}
	if err := s.providers.Create(ctx, provider); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	s.log.Info().Str("provider_id", provider.ID).Str("provider", provider.Provider).Msg("Provider config created")
	return provider.View(), nil
}

// Update edits a stored provider config. An empty api key keeps the stored
// one.
func (s *ProviderService) Update(ctx context.Context, userID, id string, req *models.ProviderRequest) (*models.ProviderView, error) {
	provider, err := s.providers.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	if provider == nil {
		return nil, ErrNotFound
	}

	if req.Name != "" {
		provider.Name = req.Name
	}
	if req.Provider != "" {
		provider.Provider = req.Provider
	}
	if req.APIKey != "" {
		provider.APIKey = req.APIKey
	}
	if req.Model != "" {
		provider.Model = req.Model
	}
	if req.BaseURL != "" {
		provider.BaseURL = strings.TrimSpace(req.BaseURL)
	}
	provider.Active = req.Active

	if err := validateProvider(provider); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := s.providers.Update(ctx, provider); err != nil {
		return nil, fmt.Errorf("failed to update provider: %w", err)
	}
	return provider.View(), nil
}

// Delete removes a stored provider config
func (s *ProviderService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.providers.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Get returns one stored provider config
func (s *ProviderService) Get(ctx context.Context, userID, id string) (*models.ProviderView, error) {
	provider, err := s.providers.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	if provider == nil {
		return nil, ErrNotFound
	}
	return provider.View(), nil
}

// List returns all provider configs owned by the user
func (s *ProviderService) List(ctx context.Context, userID string) ([]*models.ProviderView, error) {
	providers, err := s.providers.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	views := make([]*models.ProviderView, 0, len(providers))
	for _, p := range providers {
		views = append(views, p.View())
	}
	return views, nil
}

func validateProviderRequest(req *models.ProviderRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !models.ValidProviders[req.Provider] {
		return fmt.Errorf("unsupported provider %q", req.Provider)
	}
	if strings.TrimSpace(req.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if req.APIKey == "" && req.Provider != "ollama" {
		return fmt.Errorf("api key is required for provider %q", req.Provider)
	}
	return nil
}

func validateProvider(p *models.Provider) error {
	if !models.ValidProviders[p.Provider] {
		return fmt.Errorf("unsupported provider %q", p.Provider)
	}
	if p.APIKey == "" && p.Provider != "ollama" {
		return fmt.Errorf("api key is required for provider %q", p.Provider)
	}
	return nil
}
