package mcpserver

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/randalmurphal/websearch/format"
	"github.com/randalmurphal/websearch/websearch"
)

const (
	// Name is the implementation name announced to clients.
	Name = "ollama-web-search"

	// Version is the implementation version announced to clients.
	Version = "1.0.0"
)

// Defaults are the values used when a tool call leaves truncate, max_chars
// or max_results out. A zero MaxResults defers to the service default.
type Defaults struct {
	Truncate   bool
	MaxChars   int
	MaxResults int
}

// DefaultDefaults returns the format and websearch package defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		Truncate:   format.DefaultTruncate,
		MaxChars:   format.DefaultMaxChars,
		MaxResults: websearch.DefaultMaxResults,
	}
}

// callOptions merges call arguments over d.
func (d Defaults) callOptions(truncate *bool, maxChars *int) (format.Options, error) {
	if maxChars != nil && *maxChars < 0 {
		return format.Options{}, fmt.Errorf("%w: got %d", ErrInvalidMaxChars, *maxChars)
	}
	call := format.Options{Truncate: truncate, MaxChars: maxChars}
	return call.Merge(format.Options{Truncate: format.Bool(d.Truncate), MaxChars: format.Int(d.MaxChars)}), nil
}

func (d Defaults) maxResults(requested *int) *int {
	if requested != nil || d.MaxResults == 0 {
		return requested
	}
	n := d.MaxResults
	return &n
}

// Server exposes a websearch.Service as MCP tools.
type Server struct {
	MCPServer *sdkmcp.Server

	svc      *websearch.Service
	defaults atomic.Pointer[Defaults]
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a server with the web_search and web_fetch tools registered.
func New(svc *websearch.Service, defaults Defaults, opts ...Option) *Server {
	s := &Server{svc: svc}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.SetDefaults(defaults)

	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: Name, Version: Version},
		nil,
	)
	s.registerTools()
	return s
}

// Defaults returns the current defaults.
func (s *Server) Defaults() Defaults {
	return *s.defaults.Load()
}

// SetDefaults replaces the defaults. Calls already in progress keep the
// defaults they started with.
func (s *Server) SetDefaults(d Defaults) {
	s.defaults.Store(&d)
	s.logger.Debug("mcp defaults updated",
		slog.Bool("truncate", d.Truncate),
		slog.Int("max_chars", d.MaxChars),
		slog.Int("max_results", d.MaxResults))
}
