// Package llm provides text generation backends behind a single contract.
// The provider is chosen once at construction, callers never branch on it.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/config"
)

// failure kinds, distinguishable with errors.Is
var (
	// ErrMissingCredentials means the backend requires an API key that is not configured
	ErrMissingCredentials = errors.New("generation backend credentials missing")
	// ErrBackendUnavailable means the request did not complete (network, timeout, 5xx)
	ErrBackendUnavailable = errors.New("generation backend unavailable")
	// ErrMalformedResponse means the backend answered with something unusable
	ErrMalformedResponse = errors.New("generation backend returned malformed response")
)

// Generator produces text from a system style prompt and user content.
// All providers normalize to this contract.
type Generator interface {
	Generate(ctx context.Context, systemStyle, userContent string) (string, error)
}

// New selects and constructs the generation backend for the configured
// provider. Selection happens exactly once, here.
func New(cfg config.LLMConfig) (Generator, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIGenerator(cfg)
	case "ollama":
		return NewOllamaGenerator(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
