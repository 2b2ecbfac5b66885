package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/config"
	"github.com/autopress-api/internal/llm"
	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/repository"
	"github.com/autopress-api/internal/seo"
)

const systemPrompt = `You are an expert SEO content writer. You produce well-structured ` +
	`blog articles in markdown: a single H1 title on the first line, H2/H3 section ` +
	`headings, short paragraphs and natural keyword usage. Return only the article.`

// clientFactory builds an LLM client for a stored provider config
type clientFactory func(p *models.Provider, timeout time.Duration) (llm.Client, error)

// ContentService generates SEO-oriented blog content through a configured
// LLM provider and stores the result as a draft post record
type ContentService struct {
	posts     repository.PostRepository
	providers repository.ProviderRepository
	cfg       config.LLMConfig
	newClient clientFactory
	log       zerolog.Logger
}

// NewContentService creates a new content service
func NewContentService(posts repository.PostRepository, providers repository.ProviderRepository, cfg config.LLMConfig, newClient clientFactory, log zerolog.Logger) *ContentService {
	return &ContentService{
		posts:     posts,
		providers: providers,
		cfg:       cfg,
		newClient: newClient,
		log:       log.With().Str("component", "content-service").Logger(),
	}
}

// Generate produces an article for the keyword using the requested provider,
// falling back to the user's active one, and stores it as a draft
func (s *ContentService) Generate(ctx context.Context, userID string, req *models.GenerateRequest) (*models.GenerateResult, error) {
	if strings.TrimSpace(req.Keyword) == "" {
		return nil, fmt.Errorf("%w: keyword is required", ErrInvalidInput)
	}

	provider, err := s.pickProvider(ctx, userID, req.ProviderID)
	if err != nil {
		return nil, err
	}

	client, err := s.newClient(provider, s.cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to build llm client: %w", err)
	}

	text, err := client.Complete(ctx, &llm.Request{
		Model: provider.Model,
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}

	title, body := splitTitle(text)
	excerpt := firstParagraph(body, 300)
	meta := truncateRunes(excerpt, 160)

	post := &models.Post{
		ID:              uuid.New().String(),
		UserID:          userID,
		Title:           title,
		Content:         body,
		Excerpt:         excerpt,
		MetaDescription: meta,
		Keyword:         req.Keyword,
		Status:          models.PostStatusDraft,
		CreatedAt:       time.Now(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to store generated post: %w", err)
	}

	s.log.Info().
		Str("post_id", post.ID).
		Str("provider", provider.Provider).
		Str("model", provider.Model).
		Str("keyword", req.Keyword).
		Msg("Content generated")

	return &models.GenerateResult{
		PostID:          post.ID,
		Title:           title,
		Content:         body,
		Excerpt:         excerpt,
		MetaDescription: meta,
		Provider:        provider.Provider,
		Model:           provider.Model,
	}, nil
}

// Analyze scores existing content against a target keyword
func (s *ContentService) Analyze(keyword, content string) *seo.Analysis {
	return seo.Analyze(keyword, content)
}

// ResearchKeywords expands a keyword into related suggestions
func (s *ContentService) ResearchKeywords(keyword string) *seo.KeywordResearch {
	return seo.ResearchKeywords(keyword)
}

func (s *ContentService) pickProvider(ctx context.Context, userID, providerID string) (*models.Provider, error) {
	if providerID != "" {
		provider, err := s.providers.GetByID(ctx, providerID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to get provider: %w", err)
		}
		if provider == nil {
			return nil, ErrNotFound
		}
		return provider, nil
	}

	provider, err := s.providers.GetActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active provider: %w", err)
	}
	if provider == nil {
		return nil, ErrNoProvider
	}
	return provider, nil
}

// buildPrompt assembles the user prompt from the generation request
func buildPrompt(req *models.GenerateRequest) string {
	contentType := req.ContentType
	if contentType == "" {
		contentType = "blog post"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s optimized for the keyword %q.\n", contentType, req.Keyword)
	if len(req.AdditionalKeywords) > 0 {
		fmt.Fprintf(&b, "Also work in these secondary keywords: %s.\n", strings.Join(req.AdditionalKeywords, ", "))
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s.\n", req.Tone)
	}
	if req.TargetAudience != "" {
		fmt.Fprintf(&b, "Target audience: %s.\n", req.TargetAudience)
	}
	if req.Instructions != "" {
		fmt.Fprintf(&b, "Additional instructions: %s\n", req.Instructions)
	}
	b.WriteString("Aim for 800-1500 words. Start with a markdown H1 title containing the keyword.")
	return b.String()
}

// splitTitle extracts the leading markdown H1 as the title; without one the
// first non-empty line serves
func splitTitle(text string) (title, body string) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		body = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		return title, body
	}
	return "", ""
}

// firstParagraph returns the first paragraph of text, capped at max runes
func firstParagraph(text string, max int) string {
	for _, para := range strings.Split(text, "\n\n") {
		p := strings.TrimSpace(para)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		return truncateRunes(p, max)
	}
	return ""
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}
