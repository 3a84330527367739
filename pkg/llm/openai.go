package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/config"
)

// OpenAIGenerator talks to any OpenAI-compatible chat completion endpoint
// (DeepSeek, OpenRouter, vanilla OpenAI)
type OpenAIGenerator struct {
	client *openai.Client
	config config.LLMConfig
}

// NewOpenAIGenerator creates a generator over the chat completions API.
// Fails fast when no API key is configured.
func NewOpenAIGenerator(cfg config.LLMConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai provider: %w", ErrMissingCredentials)
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}, nil
}

// Generate produces text from the system style and user content
func (g *OpenAIGenerator) Generate(ctx context.Context, systemStyle, userContent string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Temperature: float32(g.config.Temperature),
		MaxTokens:   g.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemStyle,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userContent,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty content", ErrMalformedResponse)
	}

	return text, nil
}
