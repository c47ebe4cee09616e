package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvProvider, EnvBaseURL, EnvProxy, EnvMinDays, EnvConfigPath} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ProviderYahoo, cfg.Provider.Name)
	assert.Equal(t, DefaultBaseURL, cfg.Provider.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Provider.Timeout)
	assert.Equal(t, DefaultMinDays, cfg.Fetch.MinDays)
	assert.Equal(t, DefaultWidenSpan, cfg.Fetch.WidenSpan)
	assert.Equal(t, float32(DefaultWindowWidth), cfg.Window.Width)
	assert.Equal(t, float32(DefaultWindowHeight), cfg.Window.Height)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMinDays, cfg.Fetch.MinDays)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
provider:
  name: finance-go
  user_agent: test-agent
  timeout: 15s
fetch:
  min_days: 7
  widen_span: 0
window:
  width: 1024
  height: 768
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ProviderFinanceGo, cfg.Provider.Name)
	assert.Equal(t, "test-agent", cfg.Provider.UserAgent)
	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 7, cfg.Fetch.MinDays)
	assert.Equal(t, 0, cfg.Fetch.WidenSpan)
	assert.Equal(t, float32(1024), cfg.Window.Width)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvProvider, ProviderFinanceGo)
	t.Setenv(EnvBaseURL, "http://localhost:9000")
	t.Setenv(EnvProxy, "http://proxy:3128")
	t.Setenv(EnvMinDays, "8")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ProviderFinanceGo, cfg.Provider.Name)
	assert.Equal(t, "http://localhost:9000", cfg.Provider.BaseURL)
	assert.Equal(t, "http://proxy:3128", cfg.Provider.Proxy)
	assert.Equal(t, 8, cfg.Fetch.MinDays)
}

func TestLoad_InvalidMinDaysEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMinDays, "five")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fetch:\n  min_days: 3\n"), 0o644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Fetch.MinDays)
	assert.Equal(t, DefaultWidenSpan, cfg.Fetch.WidenSpan)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown provider", func(c *Config) { c.Provider.Name = "bloomberg" }},
		{"negative timeout", func(c *Config) { c.Provider.Timeout = -time.Second }},
		{"non-positive min days", func(c *Config) { c.Fetch.MinDays = -1 }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
