package models

import (
	"time"
)

// ValidProviders defines supported LLM provider names
var ValidProviders = map[string]bool{
	"openai":    true,
	"ollama":    true,
	"anthropic": true,
}

// Provider is a stored LLM provider configuration
type Provider struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Provider  string    `json:"provider" db:"provider"` // openai, ollama, anthropic
	APIKey    string    `json:"-" db:"api_key"`
	Model     string    `json:"model" db:"model"`
	BaseURL   string    `json:"base_url,omitempty" db:"base_url"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// View returns the outward-facing representation with a masked API key
func (p *Provider) View() *ProviderView {
	return &ProviderView{
		ID:        p.ID,
		Name:      p.Name,
		Provider:  p.Provider,
		APIKey:    maskKey(p.APIKey),
		Model:     p.Model,
		BaseURL:   p.BaseURL,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

// ProviderView is the serialized form of a provider config
type ProviderView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	APIKey    string    `json:"api_key"`
	Model     string    `json:"model"`
	BaseURL   string    `json:"base_url,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ProviderRequest is the payload for creating or updating a provider config
type ProviderRequest struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	Model    string `json:"model"`
	BaseURL  string `json:"base_url,omitempty"`
	Active   bool   `json:"active"`
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
