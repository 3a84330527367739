package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Telegram struct {
		Token   string        `yaml:"token"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"telegram"`

	Server struct {
		Listen  string        `yaml:"listen"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"server"`

	Storage struct {
		DSN             string `yaml:"dsn"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
	} `yaml:"storage"`

	Autopost struct {
		TickInterval time.Duration `yaml:"tick_interval"`
	} `yaml:"autopost"`

	LLM LLMConfig `yaml:"llm"`

	Tenants TenantDefaults `yaml:"tenants"`

	Admins []int64 `yaml:"admins"`

	PayContacts string `yaml:"pay_contacts"`
}

// LLMConfig holds generation backend configuration
type LLMConfig struct {
	Provider    string        `yaml:"provider"` // "openai" or "ollama"
	Endpoint    string        `yaml:"endpoint"`
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
	StylePrompt string        `yaml:"style_prompt"` // default system style for tenants without an override
}

// TenantDefaults holds initial values for newly registered tenants
type TenantDefaults struct {
	DailyLimit          int `yaml:"daily_limit"`
	IntervalMinutes     int `yaml:"interval_minutes"`
	MaxDedupe           int `yaml:"max_dedupe"`
	FetchEntriesPerFeed int `yaml:"fetch_entries_per_feed"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for telegram
	if cfg.Telegram.Timeout == 0 {
		cfg.Telegram.Timeout = 30 * time.Second
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for storage
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "file:autoposter.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Storage.MaxOpenConns == 0 {
		cfg.Storage.MaxOpenConns = 10
	}
	if cfg.Storage.MaxIdleConns == 0 {
		cfg.Storage.MaxIdleConns = 5
	}
	if cfg.Storage.ConnMaxLifetime == 0 {
		cfg.Storage.ConnMaxLifetime = 3600
	}

	// set defaults for the autopost loop
	if cfg.Autopost.TickInterval == 0 {
		cfg.Autopost.TickInterval = time.Minute
	}

	// set defaults for LLM
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}
	if cfg.LLM.Model == "" {
		switch cfg.LLM.Provider {
		case "ollama":
			cfg.LLM.Model = "qwen2.5:7b-instruct"
		default:
			cfg.LLM.Model = "deepseek-chat"
		}
	}

	// set defaults for new tenants
	if cfg.Tenants.DailyLimit == 0 {
		cfg.Tenants.DailyLimit = 10
	}
	if cfg.Tenants.IntervalMinutes == 0 {
		cfg.Tenants.IntervalMinutes = 30
	}
	if cfg.Tenants.MaxDedupe == 0 {
		cfg.Tenants.MaxDedupe = 1500
	}
	if cfg.Tenants.FetchEntriesPerFeed == 0 {
		cfg.Tenants.FetchEntriesPerFeed = 15
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}

	switch cfg.LLM.Provider {
	case "openai", "ollama":
	default:
		return fmt.Errorf("llm.provider must be openai or ollama, got %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Provider == "openai" && cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required for the openai provider")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Tenants.IntervalMinutes < 5 || cfg.Tenants.IntervalMinutes > 1440 {
		return fmt.Errorf("tenants.interval_minutes must be between 5 and 1440")
	}
	if cfg.Tenants.DailyLimit < 1 {
		return fmt.Errorf("tenants.daily_limit must be at least 1")
	}

	if cfg.Autopost.TickInterval < time.Second {
		return fmt.Errorf("autopost.tick_interval must be at least 1 second")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// IsAdmin reports whether the user id is in the configured admin list
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetTenantDefaults returns initial settings for new tenants
func (c *Config) GetTenantDefaults() TenantDefaults {
	return c.Tenants
}
