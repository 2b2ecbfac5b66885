package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func postServer(t *testing.T, createStatus int, createBody interface{}) (*httptest.Server, *int) {
	t.Helper()
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch {
		case r.URL.Path == "/wp-json/jwt-auth/v1/token":
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/wp-json/wp/v2/posts" && r.Method == http.MethodPost:
			w.WriteHeader(createStatus)
			if createBody != nil {
				json.NewEncoder(w).Encode(createBody)
			}
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return srv, &requests
}

func TestCreatePostOverREST(t *testing.T) {
	srv, _ := postServer(t, http.StatusCreated, restPost{
		ID:     55,
		Link:   "https://example.com/?p=55",
		Status: "publish",
		Title:  renderedField{Rendered: "Hello"},
	})
	defer srv.Close()

	c := NewClient(srv.URL, "admin", "secret")
	result, err := c.CreatePost(context.Background(), &Post{Title: "Hello", Content: "Body", Status: "publish"})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if result.RemoteID != 55 || result.Method != "rest" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestCreatePostFallsBackToXMLRPC(t *testing.T) {
	srv, _ := postServer(t, http.StatusInternalServerError, nil)
	defer srv.Close()

	rpc := &stubRPC{}
	c := NewClient(srv.URL, "admin", "secret", withRPCFactory(func(endpoint string, timeout time.Duration) (rpcCaller, error) {
		return rpc, nil
	}))

	result, err := c.CreatePost(context.Background(), &Post{Title: "Hello", Content: "Body", Status: "publish"})
	if err != nil {
		t.Fatalf("expected xmlrpc fallback to succeed, got %v", err)
	}
	if result.Method != "xmlrpc" || result.RemoteID != 42 {
		t.Errorf("unexpected result %+v", result)
	}
	if rpc.calls != 1 {
		t.Errorf("expected exactly 1 xmlrpc attempt, got %d", rpc.calls)
	}
}

func TestCreatePostCombinedFailure(t *testing.T) {
	srv, _ := postServer(t, http.StatusInternalServerError, nil)
	defer srv.Close()

	rpc := &stubRPC{err: fmt.Errorf("faultCode 403")}
	c := NewClient(srv.URL, "admin", "secret", withRPCFactory(func(endpoint string, timeout time.Duration) (rpcCaller, error) {
		return rpc, nil
	}))

	_, err := c.CreatePost(context.Background(), &Post{Title: "Hello", Content: "Body", Status: "publish"})
	if err == nil {
		t.Fatal("expected combined failure")
	}
	if !IsKind(err, KindRemoteRejected) {
		t.Errorf("expected remote_rejected kind, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "rest:") || !strings.Contains(msg, "xmlrpc:") {
		t.Errorf("combined error should name both transports, got %q", msg)
	}
	if rpc.calls != 1 {
		t.Errorf("xmlrpc must be attempted exactly once, got %d calls", rpc.calls)
	}
}

func TestSchedulePostRejectsPastDate(t *testing.T) {
	srv, requests := postServer(t, http.StatusCreated, restPost{ID: 1})
	defer srv.Close()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	c := NewClient(srv.URL, "admin", "secret", withClock(func() time.Time { return now }))

	_, err := c.SchedulePost(context.Background(), &Post{Title: "Later"}, now.Add(-time.Hour))
	if err == nil {
		t.Fatal("expected rejection of past publish date")
	}
	if !strings.Contains(err.Error(), "future") {
		t.Errorf("unexpected error %v", err)
	}
	// The rejection happens before any network call
	if *requests != 0 {
		t.Errorf("expected no requests, got %d", *requests)
	}
}

func TestSchedulePostSetsFutureStatus(t *testing.T) {
	var payload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/wp-json/jwt-auth/v1/token":
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/wp-json/wp/v2/posts" && r.Method == http.MethodPost:
			json.NewDecoder(r.Body).Decode(&payload)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(restPost{ID: 8, Status: "future"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	c := NewClient(srv.URL, "admin", "secret", withClock(func() time.Time { return now }))

	publishAt := now.Add(48 * time.Hour)
	result, err := c.SchedulePost(context.Background(), &Post{Title: "Later", Status: "publish"}, publishAt)
	if err != nil {
		t.Fatalf("SchedulePost failed: %v", err)
	}
	if result.Status != "future" {
		t.Errorf("expected future status, got %q", result.Status)
	}
	if payload["status"] != "future" {
		t.Errorf("payload status = %v, want future", payload["status"])
	}
	if payload["date"] != publishAt.Format(time.RFC3339) {
		t.Errorf("payload date = %v, want %s", payload["date"], publishAt.Format(time.RFC3339))
	}
}

func TestListPostsTruncatesContent(t *testing.T) {
	long := strings.Repeat("a", 500)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/wp-json/jwt-auth/v1/token":
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/wp-json/wp/v2/posts" && r.Method == http.MethodGet:
			if r.URL.Query().Get("order") != "desc" || r.URL.Query().Get("orderby") != "date" {
				t.Errorf("expected remote-side ordering, got query %q", r.URL.RawQuery)
			}
			json.NewEncoder(w).Encode([]restPost{{
				ID:      3,
				Status:  "publish",
				Title:   renderedField{Rendered: "Long"},
				Content: renderedField{Rendered: long},
			}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "admin", "secret")
	posts, err := c.ListPosts(context.Background(), "publish", 5)
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if got := len([]rune(posts[0].Excerpt)); got != 203 {
		t.Errorf("expected excerpt truncated to 200 runes plus ellipsis, got %d", got)
	}
}

func TestUpdatePostRequiresFields(t *testing.T) {
	c := NewClient("https://example.com", "admin", "secret")
	if _, err := c.UpdatePost(context.Background(), 1, UpdateFields{}); err == nil {
		t.Fatal("expected error for empty update")
	}
}
