package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/websearch/format"
	"github.com/randalmurphal/websearch/ollama"
	"github.com/randalmurphal/websearch/websearch"
)

// Transports accepted by Config.Transport.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// ErrUnsupportedFormat indicates a config file extension Load cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// Config holds everything needed to run the search server and CLI.
type Config struct {
	// --- Ollama API ---

	// APIKey authenticates against the Ollama API.
	// Required for search and fetch.
	APIKey string `json:"api_key" yaml:"api_key" toml:"api_key"`

	// BaseURL overrides the API endpoint.
	// Default: https://ollama.com/api
	BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url"`

	// Timeout bounds a single API call.
	Timeout time.Duration `json:"timeout" yaml:"timeout" toml:"timeout"`

	// RateLimit caps API requests per second. 0 disables limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" toml:"rate_limit"`

	// RateBurst is the number of requests allowed at once when limiting.
	RateBurst int `json:"rate_burst" yaml:"rate_burst" toml:"rate_burst"`

	// --- Output ---

	// MaxResults is the default search result count (1..10).
	MaxResults int `json:"max_results" yaml:"max_results" toml:"max_results"`

	// MaxChars is the default output limit in characters.
	MaxChars int `json:"max_chars" yaml:"max_chars" toml:"max_chars"`

	// Truncate enables truncation by default. Nil means true.
	Truncate *bool `json:"truncate" yaml:"truncate" toml:"truncate"`

	// --- Server ---

	// Transport is "stdio" or "http".
	Transport string `json:"transport" yaml:"transport" toml:"transport"`

	// Addr is the listen address of the HTTP transport.
	Addr string `json:"addr" yaml:"addr" toml:"addr"`

	// --- Logging ---

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format"`
}

// DefaultConfig returns a Config with sensible defaults.
// APIKey must still be set before use.
func DefaultConfig() Config {
	return Config{
		BaseURL:    ollama.DefaultBaseURL,
		Timeout:    ollama.DefaultTimeout,
		RateBurst:  1,
		MaxResults: websearch.DefaultMaxResults,
		MaxChars:   format.DefaultMaxChars,
		Transport:  TransportStdio,
		Addr:       ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file over DefaultConfig.
// Fields missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parse toml config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return cfg, nil
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables take precedence over existing values; malformed
// numbers are ignored.
//
// Supported variables:
//   - OLLAMA_API_KEY: API key
//   - WEBSEARCH_BASE_URL: API base URL
//   - WEBSEARCH_TIMEOUT: Timeout duration (e.g., "30s")
//   - WEBSEARCH_RATE_LIMIT: Requests per second
//   - WEBSEARCH_RATE_BURST: Burst size
//   - WEBSEARCH_MAX_RESULTS: Default result count
//   - WEBSEARCH_MAX_CHARS: Default output limit
//   - WEBSEARCH_TRUNCATE: Default truncation flag
//   - WEBSEARCH_TRANSPORT: "stdio" or "http"
//   - WEBSEARCH_ADDR: HTTP listen address
//   - WEBSEARCH_LOG_LEVEL, WEBSEARCH_LOG_FORMAT: Logging
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("OLLAMA_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("WEBSEARCH_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("WEBSEARCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	if v := os.Getenv("WEBSEARCH_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RateLimit = f
		}
	}
	if v := os.Getenv("WEBSEARCH_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("WEBSEARCH_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxResults = n
		}
	}
	if v := os.Getenv("WEBSEARCH_MAX_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxChars = n
		}
	}
	if v := os.Getenv("WEBSEARCH_TRUNCATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Truncate = &b
		}
	}
	if v := os.Getenv("WEBSEARCH_TRANSPORT"); v != "" {
		c.Transport = v
	}
	if v := os.Getenv("WEBSEARCH_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("WEBSEARCH_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("WEBSEARCH_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required (set OLLAMA_API_KEY)")
	}
	if c.MaxResults < websearch.MinMaxResults || c.MaxResults > websearch.MaxMaxResults {
		return fmt.Errorf("max_results must be between %d and %d, got %d",
			websearch.MinMaxResults, websearch.MaxMaxResults, c.MaxResults)
	}
	if c.MaxChars < 0 {
		return fmt.Errorf("max_chars must be >= 0, got %d", c.MaxChars)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must be >= 0, got %v", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("rate_burst must be >= 1 when rate_limit is set, got %d", c.RateBurst)
	}
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("transport must be %q or %q, got %q", TransportStdio, TransportHTTP, c.Transport)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// TruncateEnabled reports the effective default truncation flag.
func (c Config) TruncateEnabled() bool {
	if c.Truncate == nil {
		return format.DefaultTruncate
	}
	return *c.Truncate
}

// FormatOptions returns the default formatting options.
func (c Config) FormatOptions() format.Options {
	return format.Options{
		Truncate: format.Bool(c.TruncateEnabled()),
		MaxChars: format.Int(c.MaxChars),
	}
}

// ClientOptions returns the gateway client options described by c.
func (c Config) ClientOptions() []ollama.Option {
	opts := []ollama.Option{ollama.WithTimeout(c.Timeout)}
	if c.BaseURL != "" {
		opts = append(opts, ollama.WithBaseURL(c.BaseURL))
	}
	if c.RateLimit > 0 {
		opts = append(opts, ollama.WithRateLimit(rate.Limit(c.RateLimit), c.RateBurst))
	}
	return opts
}

// WithAPIKey returns a copy of the config with the specified API key.
func (c Config) WithAPIKey(key string) Config {
	c.APIKey = key
	return c
}

// WithTransport returns a copy of the config with the specified transport.
func (c Config) WithTransport(transport string) Config {
	c.Transport = transport
	return c
}
