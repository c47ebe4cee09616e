// Package config holds application configuration: provider and fetch settings
// loaded from an optional YAML file with environment overrides, and user
// preferences persisted through Fyne (see Settings).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider names
const (
	ProviderYahoo     = "yahoo"
	ProviderFinanceGo = "finance-go"
)

// Environment variables
const (
	EnvConfigPath = "FINANCE_DASHBOARD_CONFIG"
	EnvProvider   = "FINANCE_PROVIDER"
	EnvBaseURL    = "YAHOO_BASE_URL"
	EnvProxy      = "HTTPS_PROXY"
	EnvMinDays    = "FETCH_MIN_DAYS"
)

// Default values
const (
	DefaultProvider     = ProviderYahoo
	DefaultBaseURL      = "https://query1.finance.yahoo.com"
	DefaultMinDays      = 5
	DefaultWidenSpan    = 10
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		Name      string        `yaml:"name"`
		BaseURL   string        `yaml:"base_url"`
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
		Proxy     string        `yaml:"proxy"`
	} `yaml:"provider"`
	Fetch struct {
		MinDays   int `yaml:"min_days"`
		WidenSpan int `yaml:"widen_span"`
	} `yaml:"fetch"`
	Window struct {
		Width  float32 `yaml:"width"`
		Height float32 `yaml:"height"`
	} `yaml:"window"`
}

// Load reads config from a YAML file, then applies environment variable overrides
// and defaults. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Fetch.WidenSpan = -1

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv(EnvProvider); v != "" {
		cfg.Provider.Name = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvProxy); v != "" && cfg.Provider.Proxy == "" {
		cfg.Provider.Proxy = v
	}
	if v := os.Getenv(EnvMinDays); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvMinDays, err)
		}
		cfg.Fetch.MinDays = days
	}

	// Defaults
	if cfg.Provider.Name == "" {
		cfg.Provider.Name = DefaultProvider
	}
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = DefaultBaseURL
	}
	if cfg.Fetch.MinDays == 0 {
		cfg.Fetch.MinDays = DefaultMinDays
	}
	if cfg.Fetch.WidenSpan < 0 {
		cfg.Fetch.WidenSpan = DefaultWidenSpan
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultWindowHeight
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by FINANCE_DASHBOARD_CONFIG, if any
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.Provider.Name {
	case ProviderYahoo, ProviderFinanceGo:
	default:
		return fmt.Errorf("provider.name must be %q or %q, got %q", ProviderYahoo, ProviderFinanceGo, c.Provider.Name)
	}
	if c.Provider.Timeout < 0 {
		return fmt.Errorf("provider.timeout must not be negative")
	}
	if c.Fetch.MinDays <= 0 {
		return fmt.Errorf("fetch.min_days must be positive")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive")
	}
	return nil
}
