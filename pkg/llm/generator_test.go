package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/config"
)

func TestOpenAIGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system style", req.Messages[0].Content)
		assert.Equal(t, "user content", req.Messages[1].Content)

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  generated post  "}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	gen, err := NewOpenAIGenerator(config.LLMConfig{
		Endpoint:    server.URL + "/v1",
		APIKey:      "test-key",
		Model:       "deepseek-chat",
		Temperature: 0.7,
		MaxTokens:   500,
		Timeout:     5 * time.Second,
	})
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "system style", "user content")
	require.NoError(t, err)
	assert.Equal(t, "generated post", text, "response is trimmed")
}

func TestOpenAIGenerator_MissingKey(t *testing.T) {
	_, err := NewOpenAIGenerator(config.LLMConfig{Model: "deepseek-chat"})
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestOpenAIGenerator_Errors(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		gen, err := NewOpenAIGenerator(config.LLMConfig{
			Endpoint: "http://127.0.0.1:1/v1",
			APIKey:   "k",
			Model:    "m",
			Timeout:  time.Second,
		})
		require.NoError(t, err)

		_, err = gen.Generate(context.Background(), "s", "u")
		require.ErrorIs(t, err, ErrBackendUnavailable)
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
		}))
		defer server.Close()

		gen, err := NewOpenAIGenerator(config.LLMConfig{
			Endpoint: server.URL + "/v1", APIKey: "k", Model: "m", Timeout: time.Second,
		})
		require.NoError(t, err)

		_, err = gen.Generate(context.Background(), "s", "u")
		require.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestOllamaGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "qwen2.5:7b-instruct", req.Model)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "system style")
		assert.Contains(t, req.Prompt, "user content")

		json.NewEncoder(w).Encode(ollamaResponse{Response: "ollama text\n"})
	}))
	defer server.Close()

	gen := NewOllamaGenerator(config.LLMConfig{
		Endpoint: server.URL,
		Model:    "qwen2.5:7b-instruct",
		Timeout:  5 * time.Second,
	})

	text, err := gen.Generate(context.Background(), "system style", "user content")
	require.NoError(t, err)
	assert.Equal(t, "ollama text", text)
}

func TestOllamaGenerator_Errors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		gen := NewOllamaGenerator(config.LLMConfig{Endpoint: server.URL, Model: "m", Timeout: time.Second})
		_, err := gen.Generate(context.Background(), "s", "u")
		require.ErrorIs(t, err, ErrBackendUnavailable)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		gen := NewOllamaGenerator(config.LLMConfig{Endpoint: server.URL, Model: "m", Timeout: time.Second})
		_, err := gen.Generate(context.Background(), "s", "u")
		require.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("empty response text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(ollamaResponse{Response: "   "})
		}))
		defer server.Close()

		gen := NewOllamaGenerator(config.LLMConfig{Endpoint: server.URL, Model: "m", Timeout: time.Second})
		_, err := gen.Generate(context.Background(), "s", "u")
		require.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestNew_ProviderSelection(t *testing.T) {
	t.Run("ollama", func(t *testing.T) {
		gen, err := New(config.LLMConfig{Provider: "ollama", Model: "m", Timeout: time.Second})
		require.NoError(t, err)
		assert.IsType(t, &OllamaGenerator{}, gen)
	})

	t.Run("openai", func(t *testing.T) {
		gen, err := New(config.LLMConfig{Provider: "openai", APIKey: "k", Model: "m", Timeout: time.Second})
		require.NoError(t, err)
		assert.IsType(t, &OpenAIGenerator{}, gen)
	})

	t.Run("openai without key fails at construction", func(t *testing.T) {
		_, err := New(config.LLMConfig{Provider: "openai", Model: "m"})
		require.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(config.LLMConfig{Provider: "bedrock"})
		require.Error(t, err)
	})
}
