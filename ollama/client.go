package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/randalmurphal/websearch/truncate"
)

const (
	opSearch = "web_search"
	opFetch  = "web_fetch"

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 4096

	// errorPreviewChars bounds the body kept in an *Error.
	errorPreviewChars = 200
)

// Client calls the Ollama web search and web fetch APIs.
// A Client is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search runs a web search. maxResults of zero leaves the count to the API.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	var resp searchResponse
	if err := c.post(ctx, opSearch, searchRequest{Query: query, MaxResults: maxResults}, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []SearchResult{}
	}
	return resp.Results, nil
}

// Fetch retrieves a single page. When the API omits the page URL the
// requested one is used.
func (c *Client) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	var resp fetchResponse
	if err := c.post(ctx, opFetch, fetchRequest{URL: url}, &resp); err != nil {
		return nil, err
	}

	result := &FetchResult{
		Title:   resp.Title,
		URL:     resp.URL,
		Content: resp.Content,
		Links:   resp.links(),
	}
	if result.URL == "" {
		result.URL = url
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, op string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Op: op, Err: fmt.Errorf("%w: %w", ErrRateLimited, err)}
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+op, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Err: transportError(err)}
	}
	defer resp.Body.Close()

	c.logger.Debug("ollama request",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		preview := truncate.ToLength(strings.TrimSpace(string(raw)), errorPreviewChars)
		return statusError(op, resp.StatusCode, preview)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: decode response: %w", ErrRequestFailed, err)}
	}
	return nil
}

// transportError classifies an error from http.Client.Do.
func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrRequestFailed, err)
}
