package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/mocks"
	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/service"
	"github.com/autopress-api/internal/wordpress"
)

// wpConnector builds real adapters; tests point them at httptest servers
func wpConnector(url, username, password string) *wordpress.Client {
	return wordpress.NewClient(url, username, password)
}

func wpIdentityServer(status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/wp-json/wp/v2/users/me") {
			w.WriteHeader(status)
			if status == http.StatusOK {
				json.NewEncoder(w).Encode(map[string]interface{}{"id": 1, "name": "admin"})
			}
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
}

func TestSiteAddVerifiesConnection(t *testing.T) {
	srv := wpIdentityServer(http.StatusOK)
	defer srv.Close()

	sites := mocks.NewMockSiteRepository()
	svc := service.NewSiteService(sites, wpConnector, zerolog.Nop())

	view, err := svc.Add(context.Background(), "user-1", &models.SiteRequest{
		Name: "Blog", URL: srv.URL + "/", Username: "admin", Password: "secret",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if view.LastStatus != models.SiteStatusConnected {
		t.Errorf("expected connected status, got %q", view.LastStatus)
	}
	if view.URL != srv.URL {
		t.Errorf("expected normalized URL %q, got %q", srv.URL, view.URL)
	}
	if len(sites.Sites) != 1 {
		t.Errorf("expected 1 stored site, got %d", len(sites.Sites))
	}
}

func TestSiteAddRejectsBadCredentials(t *testing.T) {
	srv := wpIdentityServer(http.StatusUnauthorized)
	defer srv.Close()

	sites := mocks.NewMockSiteRepository()
	svc := service.NewSiteService(sites, wpConnector, zerolog.Nop())

	_, err := svc.Add(context.Background(), "user-1", &models.SiteRequest{
		Name: "Blog", URL: srv.URL, Username: "admin", Password: "wrong",
	})
	if !errors.Is(err, service.ErrConnectionFailed) {
		t.Fatalf("expected ErrConnectionFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid credentials") {
		t.Errorf("expected probe reason in error, got %v", err)
	}
	// Nothing is stored on a failed probe
	if len(sites.Sites) != 0 {
		t.Errorf("expected no stored sites, got %d", len(sites.Sites))
	}
}

func TestSiteViewNeverExposesPassword(t *testing.T) {
	site := &models.Site{ID: "s1", Name: "Blog", Password: "hunter2"}

	data, err := json.Marshal(site.View())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), "hunter2") {
		t.Error("serialized site view leaked the password")
	}

	// The raw model hides the password too
	data, _ = json.Marshal(site)
	if strings.Contains(string(data), "hunter2") {
		t.Error("serialized site model leaked the password")
	}
}

func TestSiteDeleteMissing(t *testing.T) {
	sites := mocks.NewMockSiteRepository()
	svc := service.NewSiteService(sites, wpConnector, zerolog.Nop())

	err := svc.Delete(context.Background(), "user-1", "no-such-site")
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSiteTestRecordsStatus(t *testing.T) {
	srv := wpIdentityServer(http.StatusForbidden)
	defer srv.Close()

	sites := mocks.NewMockSiteRepository()
	sites.Sites["s1"] = &models.Site{
		ID: "s1", UserID: "user-1", URL: srv.URL, Username: "admin", Password: "pw",
		LastStatus: models.SiteStatusConnected,
	}
	svc := service.NewSiteService(sites, wpConnector, zerolog.Nop())

	result, err := svc.Test(context.Background(), "user-1", "s1")
	if err != nil {
		t.Fatalf("Test failed: %v", err)
	}
	if result.Success {
		t.Error("expected probe failure")
	}
	if sites.Sites["s1"].LastStatus != models.SiteStatusDisconnected {
		t.Errorf("expected disconnected status recorded, got %q", sites.Sites["s1"].LastStatus)
	}
}
