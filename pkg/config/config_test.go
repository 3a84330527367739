package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: test-token
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Telegram.Token)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, time.Minute, cfg.Autopost.TickInterval)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "qwen2.5:7b-instruct", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, 10, cfg.Tenants.DailyLimit)
	assert.Equal(t, 30, cfg.Tenants.IntervalMinutes)
	assert.Equal(t, 1500, cfg.Tenants.MaxDedupe)
	assert.Equal(t, 15, cfg.Tenants.FetchEntriesPerFeed)
	assert.Contains(t, cfg.Storage.DSN, "autoposter.db")
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: tok
  timeout: 15s
server:
  listen: ":9090"
  timeout: 5s
storage:
  dsn: "file:test.db"
autopost:
  tick_interval: 30s
llm:
  provider: openai
  endpoint: https://api.deepseek.com/v1
  api_key: sk-test
  model: deepseek-chat
  temperature: 0.5
tenants:
  daily_limit: 20
  interval_minutes: 60
admins: [123, 456]
pay_contacts: "@billing"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Autopost.TickInterval)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 20, cfg.Tenants.DailyLimit)
	assert.Equal(t, 60, cfg.Tenants.IntervalMinutes)
	assert.True(t, cfg.IsAdmin(123))
	assert.True(t, cfg.IsAdmin(456))
	assert.False(t, cfg.IsAdmin(789))
	assert.Equal(t, "@billing", cfg.PayContacts)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "expanded-token")

	path := writeConfig(t, `
telegram:
  token: ${TEST_BOT_TOKEN}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-token", cfg.Telegram.Token)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "missing token",
			content: `server: {listen: ":8080"}`,
			errMsg:  "telegram.token is required",
		},
		{
			name: "unknown provider",
			content: `
telegram: {token: tok}
llm: {provider: bedrock}
`,
			errMsg: "llm.provider must be openai or ollama",
		},
		{
			name: "openai without api key",
			content: `
telegram: {token: tok}
llm: {provider: openai}
`,
			errMsg: "llm.api_key is required",
		},
		{
			name: "interval out of range",
			content: `
telegram: {token: tok}
tenants: {interval_minutes: 3}
`,
			errMsg: "interval_minutes must be between 5 and 1440",
		},
		{
			name: "temperature out of range",
			content: `
telegram: {token: tok}
llm: {temperature: 3.5}
`,
			errMsg: "llm.temperature must be between 0 and 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "telegram: [broken"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}
