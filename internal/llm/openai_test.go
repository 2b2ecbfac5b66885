package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/autopress-api/internal/llm"
)

func TestOpenAICompatComplete(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "generated article"}},
			},
		})
	}))
	defer srv.Close()

	c := llm.NewOllamaClient(srv.URL, time.Second)
	out, err := c.Complete(context.Background(), &llm.Request{
		Model:       "llama3",
		Messages:    []llm.Message{{Role: "user", Content: "write"}},
		MaxTokens:   100,
		Temperature: 0.5,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out != "generated article" {
		t.Errorf("unexpected completion %q", out)
	}
	if received["model"] != "llama3" {
		t.Errorf("model = %v", received["model"])
	}
}

func TestOpenAICompatUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit"}}`))
	}))
	defer srv.Close()

	c := llm.NewOllamaClient(srv.URL, time.Second)
	_, err := c.Complete(context.Background(), &llm.Request{
		Model:    "llama3",
		Messages: []llm.Message{{Role: "user", Content: "write"}},
	})
	if err == nil {
		t.Fatal("expected upstream error")
	}
	if !strings.Contains(err.Error(), "rate limit") {
		t.Errorf("error should carry upstream detail, got %v", err)
	}
}

func TestCompleteRequiresModelAndMessages(t *testing.T) {
	c := llm.NewOllamaClient("http://localhost:11434/v1", time.Second)

	if _, err := c.Complete(context.Background(), &llm.Request{Messages: []llm.Message{{Role: "user", Content: "x"}}}); err == nil {
		t.Error("expected model requirement")
	}
	if _, err := c.Complete(context.Background(), &llm.Request{Model: "llama3"}); err == nil {
		t.Error("expected messages requirement")
	}
}
