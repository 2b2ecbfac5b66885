package mocks

import (
	"context"

	"github.com/autopress-api/internal/models"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	EmailToUser map[string]*models.User
	InsertError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:       make(map[string]*models.User),
		EmailToUser: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Users[user.ID] = user
	m.EmailToUser[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.EmailToUser[email], nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, exists := m.EmailToUser[email]
	return exists, nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range m.Users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// MockSiteRepository is a mock implementation of SiteRepository
type MockSiteRepository struct {
	Sites       map[string]*models.Site
	InsertError error
	UpdateCalls int
	StatusCalls []models.SiteStatus
}

func NewMockSiteRepository() *MockSiteRepository {
	return &MockSiteRepository{Sites: make(map[string]*models.Site)}
}

func (m *MockSiteRepository) Create(ctx context.Context, site *models.Site) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Sites[site.ID] = site
	return nil
}

func (m *MockSiteRepository) Update(ctx context.Context, site *models.Site) error {
	m.UpdateCalls++
	m.Sites[site.ID] = site
	return nil
}

func (m *MockSiteRepository) UpdateStatus(ctx context.Context, id string, status models.SiteStatus) error {
	m.StatusCalls = append(m.StatusCalls, status)
	if site, ok := m.Sites[id]; ok {
		site.LastStatus = status
	}
	return nil
}

func (m *MockSiteRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	site, ok := m.Sites[id]
	if !ok || site.UserID != userID {
		return false, nil
	}
	delete(m.Sites, id)
	return true, nil
}

func (m *MockSiteRepository) GetByID(ctx context.Context, id, userID string) (*models.Site, error) {
	site, ok := m.Sites[id]
	if !ok || site.UserID != userID {
		return nil, nil
	}
	return site, nil
}

func (m *MockSiteRepository) ListByUser(ctx context.Context, userID string) ([]*models.Site, error) {
	var sites []*models.Site
	for _, site := range m.Sites {
		if site.UserID == userID {
			sites = append(sites, site)
		}
	}
	return sites, nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	Posts       map[string]*models.Post
	InsertError error
	UpdateCalls int
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{Posts: make(map[string]*models.Post)}
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Posts[post.ID] = post
	return nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	m.UpdateCalls++
	m.Posts[post.ID] = post
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	post, ok := m.Posts[id]
	if !ok || post.UserID != userID {
		return false, nil
	}
	delete(m.Posts, id)
	return true, nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id, userID string) (*models.Post, error) {
	post, ok := m.Posts[id]
	if !ok || post.UserID != userID {
		return nil, nil
	}
	return post, nil
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID, status string, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	for _, post := range m.Posts {
		if post.UserID != userID {
			continue
		}
		if status != "" && string(post.Status) != status {
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (m *MockPostRepository) Statistics(ctx context.Context, userID string) (*models.PostStatistics, error) {
	stats := &models.PostStatistics{}
	for _, post := range m.Posts {
		if post.UserID != userID {
			continue
		}
		stats.Total++
		switch post.Status {
		case models.PostStatusDraft:
			stats.Draft++
		case models.PostStatusPublished:
			stats.Published++
		case models.PostStatusScheduled:
			stats.Scheduled++
		case models.PostStatusFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	Settings    map[string]*models.Settings
	UpsertError error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{Settings: make(map[string]*models.Settings)}
}

func (m *MockSettingsRepository) Get(ctx context.Context, userID string) (*models.Settings, error) {
	return m.Settings[userID], nil
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, settings *models.Settings) error {
	if m.UpsertError != nil {
		return m.UpsertError
	}
	m.Settings[settings.UserID] = settings
	return nil
}

// MockProviderRepository is a mock implementation of ProviderRepository
type MockProviderRepository struct {
	Providers   map[string]*models.Provider
	InsertError error
}

func NewMockProviderRepository() *MockProviderRepository {
	return &MockProviderRepository{Providers: make(map[string]*models.Provider)}
}

func (m *MockProviderRepository) Create(ctx context.Context, provider *models.Provider) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Providers[provider.ID] = provider
	return nil
}

func (m *MockProviderRepository) Update(ctx context.Context, provider *models.Provider) error {
	m.Providers[provider.ID] = provider
	return nil
}

func (m *MockProviderRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	p, ok := m.Providers[id]
	if !ok || p.UserID != userID {
		return false, nil
	}
	delete(m.Providers, id)
	return true, nil
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id, userID string) (*models.Provider, error) {
	p, ok := m.Providers[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	return p, nil
}

func (m *MockProviderRepository) GetActive(ctx context.Context, userID string) (*models.Provider, error) {
	for _, p := range m.Providers {
		if p.UserID == userID && p.Active {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockProviderRepository) ListByUser(ctx context.Context, userID string) ([]*models.Provider, error) {
	var providers []*models.Provider
	for _, p := range m.Providers {
		if p.UserID == userID {
			providers = append(providers, p)
		}
	}
	return providers, nil
}
