package llm

import (
	"context"
)

// Message is one turn of a chat completion conversation
type Message struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// Request is a provider-agnostic chat completion request
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Client generates chat completions against one configured provider
type Client interface {
	Complete(ctx context.Context, req *Request) (string, error)
	ProviderName() string
}
