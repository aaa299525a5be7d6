package websearch

import (
	"context"
	"sync"

	"github.com/randalmurphal/websearch/ollama"
)

// MockGateway is a test double for Gateway.
// It returns fixed results or an error and records every call.
type MockGateway struct {
	mu      sync.Mutex
	results []ollama.SearchResult
	page    *ollama.FetchResult
	err     error

	// SearchCalls and FetchCalls track requests for assertions.
	SearchCalls []MockSearchCall
	FetchCalls  []string
}

// MockSearchCall records one Search invocation.
type MockSearchCall struct {
	Query      string
	MaxResults int
}

// NewMockGateway creates a mock with no results and no page.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// WithResults configures the results returned by Search.
func (m *MockGateway) WithResults(results ...ollama.SearchResult) *MockGateway {
	m.results = results
	return m
}

// WithPage configures the page returned by Fetch.
func (m *MockGateway) WithPage(page *ollama.FetchResult) *MockGateway {
	m.page = page
	return m
}

// WithError configures the mock to always return an error.
func (m *MockGateway) WithError(err error) *MockGateway {
	m.err = err
	return m
}

// Search implements Gateway.
func (m *MockGateway) Search(ctx context.Context, query string, maxResults int) ([]ollama.SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SearchCalls = append(m.SearchCalls, MockSearchCall{Query: query, MaxResults: maxResults})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}

	if len(m.results) > maxResults {
		return append([]ollama.SearchResult(nil), m.results[:maxResults]...), nil
	}
	return append([]ollama.SearchResult(nil), m.results...), nil
}

// Fetch implements Gateway.
func (m *MockGateway) Fetch(ctx context.Context, url string) (*ollama.FetchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FetchCalls = append(m.FetchCalls, url)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.page == nil {
		return &ollama.FetchResult{URL: url}, nil
	}
	page := *m.page
	page.Links = append([]string(nil), m.page.Links...)
	return &page, nil
}

// Calls returns the number of Search and Fetch calls made so far.
func (m *MockGateway) Calls() (search, fetch int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SearchCalls), len(m.FetchCalls)
}

var _ Gateway = (*MockGateway)(nil)
var _ Gateway = (*ollama.Client)(nil)
