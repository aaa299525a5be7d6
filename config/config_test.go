package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://ollama.com/api", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, 120000, cfg.MaxChars)
	assert.True(t, cfg.TruncateEnabled())
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "websearch.yaml", `
api_key: yaml-key
timeout: 5s
max_chars: 4000
truncate: false
transport: http
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml-key", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 4000, cfg.MaxChars)
	assert.False(t, cfg.TruncateEnabled())
	assert.Equal(t, TransportHTTP, cfg.Transport)

	// Untouched fields keep defaults.
	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "websearch.toml", `
api_key = "toml-key"
timeout = "1m"
max_results = 8
rate_limit = 2.5
rate_burst = 3
log_level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toml-key", cfg.APIKey)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, 8, cfg.MaxResults)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 3, cfg.RateBurst)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 120000, cfg.MaxChars)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "websearch.json", `{}`))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "bad.yaml", "max_chars: [oops"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "bad.toml", "max_chars = "))
	assert.Error(t, err)
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("OLLAMA_API_KEY", "env-key")
	t.Setenv("WEBSEARCH_TIMEOUT", "10s")
	t.Setenv("WEBSEARCH_MAX_CHARS", "999")
	t.Setenv("WEBSEARCH_MAX_RESULTS", "not-a-number")
	t.Setenv("WEBSEARCH_TRUNCATE", "false")
	t.Setenv("WEBSEARCH_TRANSPORT", "http")
	t.Setenv("WEBSEARCH_RATE_LIMIT", "4")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 999, cfg.MaxChars)
	assert.Equal(t, 5, cfg.MaxResults, "malformed values are ignored")
	assert.False(t, cfg.TruncateEnabled())
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, 4.0, cfg.RateLimit)
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig().WithAPIKey("k")

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(*Config) {}, false},
		{"missing api key", func(c *Config) { c.APIKey = "" }, true},
		{"max_results zero", func(c *Config) { c.MaxResults = 0 }, true},
		{"max_results eleven", func(c *Config) { c.MaxResults = 11 }, true},
		{"negative max_chars", func(c *Config) { c.MaxChars = -1 }, true},
		{"zero max_chars", func(c *Config) { c.MaxChars = 0 }, false},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"negative rate", func(c *Config) { c.RateLimit = -1 }, true},
		{"rate without burst", func(c *Config) { c.RateLimit = 1; c.RateBurst = 0 }, true},
		{"unknown transport", func(c *Config) { c.Transport = "grpc" }, true},
		{"http transport", func(c *Config) { c.Transport = TransportHTTP }, false},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"json log format", func(c *Config) { c.LogFormat = "JSON" }, false},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_FormatOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxChars = 300

	truncate, maxChars := cfg.FormatOptions().Resolved()
	assert.True(t, truncate)
	assert.Equal(t, 300, maxChars)

	off := false
	cfg.Truncate = &off
	truncate, _ = cfg.FormatOptions().Resolved()
	assert.False(t, truncate)
}

func TestConfig_ClientOptions(t *testing.T) {
	cfg := DefaultConfig()
	assert.Len(t, cfg.ClientOptions(), 2)

	cfg.RateLimit = 1
	assert.Len(t, cfg.ClientOptions(), 3)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "websearch.yaml", "max_chars: 100\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg Config, err error) {
			if err != nil {
				return
			}
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, dir, "websearch.yaml", "max_chars: 200\n")
	writeFile(t, dir, "other.yaml", "max_chars: 1\n")

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 200, cfg.MaxChars)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "cfg.yaml"), func(Config, error) {})
	assert.Error(t, err)
}
