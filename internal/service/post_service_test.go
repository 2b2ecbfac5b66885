package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/mocks"
	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/service"
)

func seedPostAndSite(posts *mocks.MockPostRepository, sites *mocks.MockSiteRepository, siteURL string) {
	posts.Posts["post-1"] = &models.Post{
		ID: "post-1", UserID: "user-1", Title: "Hello", Content: "Body",
		Status: models.PostStatusDraft,
	}
	sites.Sites["site-1"] = &models.Site{
		ID: "site-1", UserID: "user-1", URL: siteURL, Username: "admin", Password: "pw",
	}
}

func TestPublishUpdatesRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/wp-json/jwt-auth/v1/token":
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/wp-json/wp/v2/posts" && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id": 77, "link": "https://example.com/?p=77", "status": "publish",
				"title": map[string]string{"rendered": "Hello"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	posts := mocks.NewMockPostRepository()
	sites := mocks.NewMockSiteRepository()
	seedPostAndSite(posts, sites, srv.URL)
	svc := service.NewPostService(posts, sites, wpConnector, zerolog.Nop())

	result, err := svc.Publish(context.Background(), "user-1", "post-1", &models.PublishRequest{SiteID: "site-1"})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if result.RemoteID != 77 {
		t.Errorf("remote id = %d, want 77", result.RemoteID)
	}

	record := posts.Posts["post-1"]
	if record.Status != models.PostStatusPublished {
		t.Errorf("record status = %q, want published", record.Status)
	}
	if record.RemotePostID != 77 || record.RemoteURL != "https://example.com/?p=77" {
		t.Errorf("record remote fields %d %q", record.RemotePostID, record.RemoteURL)
	}
	if record.SiteID != "site-1" {
		t.Errorf("record site = %q", record.SiteID)
	}
}

func TestPublishFailureMarksRecord(t *testing.T) {
	// REST rejects and the xmlrpc endpoint does not exist either
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	posts := mocks.NewMockPostRepository()
	sites := mocks.NewMockSiteRepository()
	seedPostAndSite(posts, sites, srv.URL)
	svc := service.NewPostService(posts, sites, wpConnector, zerolog.Nop())

	_, err := svc.Publish(context.Background(), "user-1", "post-1", &models.PublishRequest{SiteID: "site-1"})
	if err == nil {
		t.Fatal("expected publish failure")
	}
	if posts.Posts["post-1"].Status != models.PostStatusFailed {
		t.Errorf("record status = %q, want failed", posts.Posts["post-1"].Status)
	}
}

func TestPublishPastDateRejected(t *testing.T) {
	posts := mocks.NewMockPostRepository()
	sites := mocks.NewMockSiteRepository()
	seedPostAndSite(posts, sites, "https://wp.example.com")
	svc := service.NewPostService(posts, sites, wpConnector, zerolog.Nop())

	past := time.Now().Add(-time.Hour)
	_, err := svc.Publish(context.Background(), "user-1", "post-1", &models.PublishRequest{
		SiteID:    "site-1",
		PublishAt: &past,
	})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	// Rejected before anything happens: no remote call, record untouched
	if posts.Posts["post-1"].Status != models.PostStatusDraft {
		t.Errorf("record status = %q, want draft", posts.Posts["post-1"].Status)
	}
}

func TestPublishUnknownSite(t *testing.T) {
	posts := mocks.NewMockPostRepository()
	sites := mocks.NewMockSiteRepository()
	posts.Posts["post-1"] = &models.Post{ID: "post-1", UserID: "user-1", Status: models.PostStatusDraft}
	svc := service.NewPostService(posts, sites, wpConnector, zerolog.Nop())

	_, err := svc.Publish(context.Background(), "user-1", "post-1", &models.PublishRequest{SiteID: "missing"})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPostUpdateAppliesFields(t *testing.T) {
	posts := mocks.NewMockPostRepository()
	posts.Posts["post-1"] = &models.Post{
		ID: "post-1", UserID: "user-1", Title: "Old", Content: "Old body",
		Status: models.PostStatusDraft,
	}
	svc := service.NewPostService(posts, mocks.NewMockSiteRepository(), wpConnector, zerolog.Nop())

	title := "New"
	updated, err := svc.Update(context.Background(), "user-1", "post-1", &models.PostUpdateRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "New" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Content != "Old body" {
		t.Errorf("unset fields must stay untouched, got %q", updated.Content)
	}
}

func TestPostStatistics(t *testing.T) {
	posts := mocks.NewMockPostRepository()
	posts.Posts["a"] = &models.Post{ID: "a", UserID: "user-1", Status: models.PostStatusDraft}
	posts.Posts["b"] = &models.Post{ID: "b", UserID: "user-1", Status: models.PostStatusPublished}
	posts.Posts["c"] = &models.Post{ID: "c", UserID: "someone-else", Status: models.PostStatusDraft}
	svc := service.NewPostService(posts, mocks.NewMockSiteRepository(), wpConnector, zerolog.Nop())

	stats, err := svc.Statistics(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Statistics failed: %v", err)
	}
	if stats.Total != 2 || stats.Draft != 1 || stats.Published != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
