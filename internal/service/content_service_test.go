package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/config"
	"github.com/autopress-api/internal/llm"
	"github.com/autopress-api/internal/mocks"
	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/service"
)

// fakeLLM returns a canned completion and records the request
type fakeLLM struct {
	response string
	err      error
	lastReq  *llm.Request
}

func (f *fakeLLM) Complete(ctx context.Context, req *llm.Request) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) ProviderName() string { return "fake" }

func newContentService(posts *mocks.MockPostRepository, providers *mocks.MockProviderRepository, client llm.Client) *service.ContentService {
	return service.NewContentService(posts, providers, config.LLMConfig{
		RequestTimeout: time.Second,
		MaxTokens:      500,
		Temperature:    0.5,
	}, func(p *models.Provider, timeout time.Duration) (llm.Client, error) {
		return client, nil
	}, zerolog.Nop())
}

func activeProvider(userID string) *models.Provider {
	return &models.Provider{
		ID: "p1", UserID: userID, Name: "Default", Provider: "openai",
		APIKey: "sk-test", Model: "gpt-4o-mini", Active: true,
	}
}

func TestGenerateStoresDraft(t *testing.T) {
	posts := mocks.NewMockPostRepository()
	providers := mocks.NewMockProviderRepository()
	providers.Providers["p1"] = activeProvider("user-1")

	fake := &fakeLLM{response: "# Ultimate Coffee Guide\n\nCoffee is worth doing well.\n\n## Brewing\n\nMore detail here."}
	svc := newContentService(posts, providers, fake)

	result, err := svc.Generate(context.Background(), "user-1", &models.GenerateRequest{
		Keyword: "coffee", Tone: "friendly",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.Title != "Ultimate Coffee Guide" {
		t.Errorf("title = %q, want heading text", result.Title)
	}
	if strings.HasPrefix(result.Content, "#") {
		t.Errorf("content should not repeat the title heading, got %q", result.Content[:20])
	}
	if result.Excerpt != "Coffee is worth doing well." {
		t.Errorf("excerpt = %q", result.Excerpt)
	}
	if result.Provider != "openai" || result.Model != "gpt-4o-mini" {
		t.Errorf("unexpected provenance %q/%q", result.Provider, result.Model)
	}

	stored := posts.Posts[result.PostID]
	if stored == nil {
		t.Fatal("generated post was not stored")
	}
	if stored.Status != models.PostStatusDraft {
		t.Errorf("stored status = %q, want draft", stored.Status)
	}
	if stored.Keyword != "coffee" {
		t.Errorf("stored keyword = %q", stored.Keyword)
	}

	if fake.lastReq == nil || fake.lastReq.Model != "gpt-4o-mini" {
		t.Errorf("llm request model = %+v", fake.lastReq)
	}
	if len(fake.lastReq.Messages) != 2 || fake.lastReq.Messages[0].Role != "system" {
		t.Errorf("expected system+user messages, got %+v", fake.lastReq.Messages)
	}
	if !strings.Contains(fake.lastReq.Messages[1].Content, "friendly") {
		t.Errorf("tone missing from prompt: %q", fake.lastReq.Messages[1].Content)
	}
}

func TestGenerateWithoutProvider(t *testing.T) {
	svc := newContentService(mocks.NewMockPostRepository(), mocks.NewMockProviderRepository(), &fakeLLM{})

	_, err := svc.Generate(context.Background(), "user-1", &models.GenerateRequest{Keyword: "coffee"})
	if !errors.Is(err, service.ErrNoProvider) {
		t.Errorf("expected ErrNoProvider, got %v", err)
	}
}

func TestGenerateRequiresKeyword(t *testing.T) {
	svc := newContentService(mocks.NewMockPostRepository(), mocks.NewMockProviderRepository(), &fakeLLM{})

	_, err := svc.Generate(context.Background(), "user-1", &models.GenerateRequest{})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	posts := mocks.NewMockPostRepository()
	providers := mocks.NewMockProviderRepository()
	providers.Providers["p1"] = activeProvider("user-1")

	svc := newContentService(posts, providers, &fakeLLM{err: errors.New("rate limited")})

	_, err := svc.Generate(context.Background(), "user-1", &models.GenerateRequest{Keyword: "coffee"})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("expected upstream error, got %v", err)
	}
	if len(posts.Posts) != 0 {
		t.Errorf("no post should be stored on failure, got %d", len(posts.Posts))
	}
}
