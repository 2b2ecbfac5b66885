package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/repository"
	"github.com/autopress-api/internal/validation"
	"github.com/autopress-api/internal/wordpress"
)

// SiteService manages the registry of WordPress sites
type SiteService struct {
	sites   repository.SiteRepository
	connect Connector
	log     zerolog.Logger
}

// NewSiteService creates a new site service
func NewSiteService(sites repository.SiteRepository, connect Connector, log zerolog.Logger) *SiteService {
	return &SiteService{
		sites:   sites,
		connect: connect,
		log:     log.With().Str("component", "site-service").Logger(),
	}
}

// Add registers a new site. The credentials are verified against the live
// site before anything is stored; a failed probe rejects the registration
// with the probe's reason.
func (s *SiteService) Add(ctx context.Context, userID string, req *models.SiteRequest) (*models.SiteView, error) {
	if err := validation.ValidateSiteRequest(req.Name, req.URL, req.Username, req.Password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	url := wordpress.NormalizeURL(req.URL)
	client := s.connect(url, req.Username, req.Password)
	result := client.TestConnection(ctx)
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", ErrConnectionFailed, result.Reason)
	}

	now := time.Now()
	site := &models.Site{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         req.Name,
		URL:          url,
		Username:     req.Username,
		Password:     req.Password,
		Active:       true,
		LastStatus:   models.SiteStatusConnected,
		LastTestedAt: &now,
		CreatedAt:    now,
	}
	if err := s.sites.Create(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to create site: %w", err)
	}

	s.log.Info().Str("site_id", site.ID).Str("url", url).Str("method", result.Method).Msg("Site registered")
	return site.View(), nil
}

// Update edits a stored site. Changed credentials are re-verified before
// the update is persisted.
func (s *SiteService) Update(ctx context.Context, userID, id string, req *models.SiteRequest) (*models.SiteView, error) {
	site, err := s.sites.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	if site == nil {
		return nil, ErrNotFound
	}

	if req.Name != "" {
		site.Name = req.Name
	}
	if req.URL != "" {
		site.URL = wordpress.NormalizeURL(req.URL)
	}
	if req.Username != "" {
		site.Username = req.Username
	}
	if req.Password != "" {
		site.Password = req.Password
	}

	client := s.connect(site.URL, site.Username, site.Password)
	result := client.TestConnection(ctx)
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", ErrConnectionFailed, result.Reason)
	}

	now := time.Now()
	site.LastStatus = models.SiteStatusConnected
	site.LastTestedAt = &now
	if err := s.sites.Update(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to update site: %w", err)
	}
	return site.View(), nil
}

// Delete removes a stored site
func (s *SiteService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.sites.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	s.log.Info().Str("site_id", id).Msg("Site deleted")
	return nil
}

// Get returns one stored site
func (s *SiteService) Get(ctx context.Context, userID, id string) (*models.SiteView, error) {
	site, err := s.sites.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	if site == nil {
		return nil, ErrNotFound
	}
	return site.View(), nil
}

// List returns all sites owned by the user
func (s *SiteService) List(ctx context.Context, userID string) ([]*models.SiteView, error) {
	sites, err := s.sites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	views := make([]*models.SiteView, 0, len(sites))
	for _, site := range sites {
		views = append(views, site.View())
	}
	return views, nil
}

// Test probes a stored site and records the outcome. The probe result is
// returned even when the connection failed.
func (s *SiteService) Test(ctx context.Context, userID, id string) (*wordpress.ConnectionResult, error) {
	site, err := s.sites.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	if site == nil {
		return nil, ErrNotFound
	}

	client := s.connect(site.URL, site.Username, site.Password)
	result := client.TestConnection(ctx)

	status := models.SiteStatusConnected
	if !result.Success {
		status = models.SiteStatusDisconnected
	}
	if err := s.sites.UpdateStatus(ctx, site.ID, status); err != nil {
		s.log.Warn().Err(err).Str("site_id", site.ID).Msg("Failed to record connection status")
	}
	return result, nil
}

// TestCredentials probes ad-hoc credentials without touching the registry
func (s *SiteService) TestCredentials(ctx context.Context, req *models.ConnectionTestRequest) *wordpress.ConnectionResult {
	client := s.connect(req.URL, req.Username, req.Password)
	return client.TestConnection(ctx)
}
