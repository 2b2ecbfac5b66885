package llm

import (
	"fmt"
	"time"

	"github.com/autopress-api/internal/models"
)

// NewFromProvider builds the right client for a stored provider config
func NewFromProvider(p *models.Provider, timeout time.Duration) (Client, error) {
	switch p.Provider {
	case "openai":
		if p.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an api key")
		}
		return NewOpenAIClient(p.APIKey, timeout), nil
	case "ollama":
		return NewOllamaClient(p.BaseURL, timeout), nil
	case "anthropic":
		if p.APIKey == "" {
			return nil, fmt.Errorf("anthropic provider requires an api key")
		}
		return NewAnthropicClient(p.APIKey, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", p.Provider)
	}
}
