package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/draftpost/api/internal/config"
)

// ErrNoChoices is returned when the provider answers without any completion.
var ErrNoChoices = errors.New("no choices in response")

// OpenAIClient handles communication with an OpenAI-compatible chat API
type OpenAIClient struct {
	client      openai.Client
	apiKey      string
	model       string
	temperature float64
}

// NewOpenAIClient creates a new chat completion client. SDK retries are
// disabled; a failed call falls back to the local generator instead.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(cfg.Timeout)*time.Second))
	}

	return &OpenAIClient{
		client:      openai.NewClient(opts...),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// ChatCompletions requests n completions for one system/user message pair
// and returns the trimmed content of each choice.
func (c *OpenAIClient) ChatCompletions(ctx context.Context, system, user string, n int) ([]string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		N:           openai.Int(int64(n)),
		Temperature: openai.Float(c.temperature),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("openai API error (status %d): %w", apiErr.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrNoChoices
	}

	outputs := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		outputs = append(outputs, strings.TrimSpace(choice.Message.Content))
	}
	return outputs, nil
}

// IsConfigured returns true if the client has valid configuration
func (c *OpenAIClient) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}
