package websearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/randalmurphal/websearch/doctree"
	"github.com/randalmurphal/websearch/format"
	"github.com/randalmurphal/websearch/ollama"
)

const (
	// DefaultMaxResults is used when a search does not ask for a count.
	DefaultMaxResults = 5

	// MinMaxResults and MaxMaxResults bound SearchRequest.MaxResults.
	MinMaxResults = 1
	MaxMaxResults = 10
)

var (
	// ErrInvalidQuery indicates a blank search query.
	ErrInvalidQuery = errors.New("query must not be blank")

	// ErrInvalidURL indicates a fetch URL that is not absolute http(s).
	ErrInvalidURL = errors.New("url must be an absolute http or https URL")

	// ErrInvalidMaxResults indicates a result count outside 1..10.
	ErrInvalidMaxResults = errors.New("max_results must be between 1 and 10")
)

// Gateway performs the remote search and fetch calls.
type Gateway interface {
	Search(ctx context.Context, query string, maxResults int) ([]ollama.SearchResult, error)
	Fetch(ctx context.Context, url string) (*ollama.FetchResult, error)
}

// SearchRequest describes a web search.
type SearchRequest struct {
	Query      string
	MaxResults *int
	Options    format.Options
}

// FetchRequest describes a page fetch.
type FetchRequest struct {
	URL     string
	Options format.Options
}

// Service runs searches and fetches and renders them as bounded markdown.
type Service struct {
	gateway   Gateway
	formatter *format.Formatter
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithFormatter sets the formatter used to render results.
func WithFormatter(f *format.Formatter) Option {
	return func(s *Service) { s.formatter = f }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a service backed by gateway.
func NewService(gateway Gateway, opts ...Option) *Service {
	s := &Service{gateway: gateway}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.formatter == nil {
		s.formatter = format.NewFormatter(format.WithLogger(s.logger))
	}
	return s
}

// Search validates req, queries the gateway and renders the results.
func (s *Service) Search(ctx context.Context, req SearchRequest) (string, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return "", ErrInvalidQuery
	}

	maxResults := DefaultMaxResults
	if req.MaxResults != nil {
		maxResults = *req.MaxResults
	}
	if maxResults < MinMaxResults || maxResults > MaxMaxResults {
		return "", fmt.Errorf("%w: got %d", ErrInvalidMaxResults, maxResults)
	}

	results, err := s.gateway.Search(ctx, query, maxResults)
	if err != nil {
		s.logger.Warn("web search failed",
			slog.String("query", query),
			slog.Any("error", err))
		return "", fmt.Errorf("search %q: %w", query, err)
	}

	items := make([]format.SearchItem, 0, len(results))
	for _, r := range results {
		items = append(items, format.SearchItem{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
			Source:  doctree.SourceSearch,
		})
	}

	s.logger.Debug("web search",
		slog.String("query", query),
		slog.Int("max_results", maxResults),
		slog.Int("results", len(items)))

	return s.formatter.FormatSearch(req.Query, items, req.Options)
}

// Fetch validates req, fetches the page and renders it.
func (s *Service) Fetch(ctx context.Context, req FetchRequest) (string, error) {
	target := strings.TrimSpace(req.URL)
	if err := validateURL(target); err != nil {
		return "", err
	}

	page, err := s.gateway.Fetch(ctx, target)
	if err != nil {
		s.logger.Warn("web fetch failed",
			slog.String("url", target),
			slog.Any("error", err))
		return "", fmt.Errorf("fetch %s: %w", target, err)
	}

	s.logger.Debug("web fetch",
		slog.String("url", target),
		slog.Int("content_chars", len([]rune(page.Content))),
		slog.Int("links", len(page.Links)))

	return s.formatter.FormatFetch(format.FetchPage{
		Title:   page.Title,
		URL:     target,
		Content: page.Content,
		Links:   page.Links,
		Source:  doctree.SourceFetch,
	}, req.Options)
}

func validateURL(raw string) error {
	if raw == "" {
		return ErrInvalidURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}
