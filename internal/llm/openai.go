package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAICompatClient speaks the OpenAI chat-completion wire format. Ollama
// exposes the same surface, so the same client serves both providers with a
// different base URL.
type OpenAICompatClient struct {
	provider string
	baseURL  string
	apiKey   string
	http     *http.Client
}

// NewOpenAIClient builds a client against the OpenAI API
func NewOpenAIClient(apiKey string, timeout time.Duration) *OpenAICompatClient {
	return &OpenAICompatClient{
		provider: "openai",
		baseURL:  defaultOpenAIBaseURL,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

// NewOllamaClient builds a client against an Ollama host's OpenAI-compatible
// endpoint
func NewOllamaClient(baseURL string, timeout time.Duration) *OpenAICompatClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434/v1"
	}
	return &OpenAICompatClient{
		provider: "ollama",
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   "ollama", // the endpoint requires a bearer header but ignores the value
		http:     &http.Client{Timeout: timeout},
	}
}

func (c *OpenAICompatClient) ProviderName() string {
	return c.provider
}

// Complete posts the chat completion request and returns the first choice
func (c *OpenAICompatClient) Complete(ctx context.Context, req *Request) (string, error) {
	if req.Model == "" {
		return "", fmt.Errorf("model is required")
	}
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("messages cannot be empty")
	}

	body, err := json.Marshal(map[string]interface{}{
		"model":       req.Model,
		"messages":    req.Messages,
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%s error %s: %s", c.provider, resp.Status, strings.TrimSpace(string(payload)))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", c.provider)
	}

	return completion.Choices[0].Message.Content, nil
}
