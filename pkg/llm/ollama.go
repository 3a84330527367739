package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/config"
)

const defaultOllamaEndpoint = "http://127.0.0.1:11434/api/generate"

// OllamaGenerator talks to a local Ollama instance via its native
// /api/generate endpoint. No credentials involved.
type OllamaGenerator struct {
	client   *http.Client
	endpoint string
	model    string
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// NewOllamaGenerator creates a generator over the Ollama generate API
func NewOllamaGenerator(cfg config.LLMConfig) *OllamaGenerator {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultOllamaEndpoint
	}
	return &OllamaGenerator{
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: endpoint,
		model:    cfg.Model,
	}
}

// Generate produces text from the system style and user content. Ollama's
// generate API takes a single prompt, so the style is prepended.
func (g *OllamaGenerator) Generate(ctx context.Context, systemStyle, userContent string) (string, error) {
	payload, err := json.Marshal(ollamaRequest{
		Model:  g.model,
		Prompt: systemStyle + "\n\n" + userContent,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrBackendUnavailable, resp.StatusCode)
	}

	var parsed ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	text := strings.TrimSpace(parsed.Response)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	return text, nil
}
