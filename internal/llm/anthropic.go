package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient generates completions through the Anthropic Messages API
type AnthropicClient struct {
	client  anthropic.Client
	timeout time.Duration
}

// NewAnthropicClient builds a client with the given API key
func NewAnthropicClient(apiKey string, timeout time.Duration) *AnthropicClient {
	return &AnthropicClient{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		timeout: timeout,
	}
}

func (c *AnthropicClient) ProviderName() string {
	return "anthropic"
}

// Complete converts the conversation to the Messages API shape. System
// messages map to the System parameter rather than the messages array.
func (c *AnthropicClient) Complete(ctx context.Context, req *Request) (string, error) {
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("messages cannot be empty")
	}

	var (
		messages   []anthropic.MessageParam
		systemText string
	)
	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			if systemText == "" {
				systemText = msg.Content
			}
		case "assistant":
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	if len(messages) == 0 {
		return "", fmt.Errorf("at least one user message is required")
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  messages,
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if systemText != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemText}}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Messages.New(timeoutCtx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}

	var response strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			response.WriteString(block.Text)
		}
	}
	if response.Len() == 0 {
		return "", fmt.Errorf("anthropic returned no text content")
	}

	return response.String(), nil
}
