package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/websearch/ollama"
	"github.com/randalmurphal/websearch/websearch"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, gw *websearch.MockGateway, defaults Defaults) *Server {
	t.Helper()
	svc := websearch.NewService(gw, websearch.WithLogger(quietLogger()))
	return New(svc, defaults, WithLogger(quietLogger()))
}

func connectInMemory(t *testing.T, ctx context.Context, srv *Server) *sdkmcp.ClientSession {
	t.Helper()
	t1, t2 := sdkmcp.NewInMemoryTransports()
	serverSession, err := srv.MCPServer.Connect(ctx, t1, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callText(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", res.Content[0])
	return tc.Text, res.IsError
}

func TestListTools(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t, websearch.NewMockGateway(), DefaultDefaults()))

	res, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	tools := map[string]*sdkmcp.Tool{}
	for _, tool := range res.Tools {
		tools[tool.Name] = tool
	}
	require.Contains(t, tools, ToolWebSearch)
	require.Contains(t, tools, ToolWebFetch)

	raw, err := json.Marshal(tools[ToolWebSearch].InputSchema)
	require.NoError(t, err)
	var schema struct {
		Required   []string                  `json:"required"`
		Properties map[string]map[string]any `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, []string{"query"}, schema.Required)
	assert.Equal(t, float64(1), schema.Properties["max_results"]["minimum"])
	assert.Equal(t, float64(10), schema.Properties["max_results"]["maximum"])
	assert.Equal(t, float64(0), schema.Properties["max_chars"]["minimum"])
	assert.NotContains(t, schema.Properties["max_results"], "default")
	assert.NotContains(t, schema.Properties["max_chars"], "default")
}

func TestWebSearch(t *testing.T) {
	ctx := context.Background()
	gw := websearch.NewMockGateway().WithResults(
		ollama.SearchResult{Title: "Example Website 1", URL: "https://example1.com", Content: "first"},
		ollama.SearchResult{Title: "Example Website 2", URL: "https://example2.com", Content: "second"},
	)
	session := connectInMemory(t, ctx, newTestServer(t, gw, DefaultDefaults()))

	text, isErr := callText(t, ctx, session, ToolWebSearch, map[string]any{"query": "test query", "max_results": 2})
	assert.False(t, isErr)
	assert.True(t, strings.HasPrefix(text, `Search Results — "test query"`))
	assert.Contains(t, text, "### [Example Website 2](https://example2.com)")
	assert.Equal(t, []websearch.MockSearchCall{{Query: "test query", MaxResults: 2}}, gw.SearchCalls)
}

func TestWebSearch_Errors(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t, websearch.NewMockGateway(), DefaultDefaults()))

	tests := []struct {
		name    string
		args    map[string]any
		message string
	}{
		{"blank query", map[string]any{"query": "   "}, "query must not be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := callText(t, ctx, session, ToolWebSearch, tt.args)
			assert.True(t, isErr)
			assert.Contains(t, text, tt.message)
		})
	}
}

func TestWebSearch_NegativeMaxCharsRejected(t *testing.T) {
	ctx := context.Background()
	gw := websearch.NewMockGateway()
	session := connectInMemory(t, ctx, newTestServer(t, gw, DefaultDefaults()))

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      ToolWebSearch,
		Arguments: map[string]any{"query": "q", "max_chars": -1},
	})
	if err == nil {
		assert.True(t, res.IsError)
	}
	assert.Empty(t, gw.SearchCalls)
}

func TestOptions_NegativeMaxChars(t *testing.T) {
	n := -5
	_, err := DefaultDefaults().callOptions(nil, &n)
	assert.ErrorIs(t, err, ErrInvalidMaxChars)
}

func TestWebSearch_MaxResultsDefault(t *testing.T) {
	tests := []struct {
		name     string
		defaults Defaults
		args     map[string]any
		expected int
	}{
		{
			name:     "configured default",
			defaults: Defaults{Truncate: true, MaxChars: 1000, MaxResults: 8},
			args:     map[string]any{"query": "q"},
			expected: 8,
		},
		{
			name:     "argument wins",
			defaults: Defaults{Truncate: true, MaxChars: 1000, MaxResults: 8},
			args:     map[string]any{"query": "q", "max_results": 3},
			expected: 3,
		},
		{
			name:     "zero defers to service",
			defaults: Defaults{Truncate: true, MaxChars: 1000},
			args:     map[string]any{"query": "q"},
			expected: websearch.DefaultMaxResults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			gw := websearch.NewMockGateway()
			session := connectInMemory(t, ctx, newTestServer(t, gw, tt.defaults))

			_, isErr := callText(t, ctx, session, ToolWebSearch, tt.args)
			require.False(t, isErr)
			require.Len(t, gw.SearchCalls, 1)
			assert.Equal(t, tt.expected, gw.SearchCalls[0].MaxResults)
		})
	}
}

func TestWebSearch_MaxResultsFollowsSetDefaults(t *testing.T) {
	ctx := context.Background()
	gw := websearch.NewMockGateway()
	srv := newTestServer(t, gw, DefaultDefaults())
	session := connectInMemory(t, ctx, srv)

	d := srv.Defaults()
	d.MaxResults = 9
	srv.SetDefaults(d)

	_, isErr := callText(t, ctx, session, ToolWebSearch, map[string]any{"query": "q"})
	require.False(t, isErr)
	require.Len(t, gw.SearchCalls, 1)
	assert.Equal(t, 9, gw.SearchCalls[0].MaxResults)
}

func TestWebSearch_GatewayFailure(t *testing.T) {
	ctx := context.Background()
	gw := websearch.NewMockGateway().WithError(&ollama.Error{Op: "web_search", StatusCode: 401, Err: ollama.ErrUnauthorized})
	session := connectInMemory(t, ctx, newTestServer(t, gw, DefaultDefaults()))

	text, isErr := callText(t, ctx, session, ToolWebSearch, map[string]any{"query": "q"})
	assert.True(t, isErr)
	assert.Contains(t, text, "status 401")
}

func TestWebFetch(t *testing.T) {
	ctx := context.Background()
	gw := websearch.NewMockGateway().WithPage(&ollama.FetchResult{
		Title:   "Example",
		Content: "This is the fetched content.",
		Links:   []string{"https://example.com/related1", "https://example.com/related2"},
	})
	session := connectInMemory(t, ctx, newTestServer(t, gw, DefaultDefaults()))

	text, isErr := callText(t, ctx, session, ToolWebFetch, map[string]any{"url": "https://example.com/page"})
	assert.False(t, isErr)
	assert.Equal(t, strings.Join([]string{
		"**Source:** fetch",
		"**URL:** https://example.com/page",
		"**Content:**",
		"---",
		"This is the fetched content.",
		"---",
		"**Links:**",
		"- [https://example.com/related1](https://example.com/related1)",
		"- [https://example.com/related2](https://example.com/related2)",
	}, "\n"), text)
}

func TestWebFetch_InvalidURL(t *testing.T) {
	ctx := context.Background()
	gw := websearch.NewMockGateway()
	session := connectInMemory(t, ctx, newTestServer(t, gw, DefaultDefaults()))

	text, isErr := callText(t, ctx, session, ToolWebFetch, map[string]any{"url": "not a url"})
	assert.True(t, isErr)
	assert.Contains(t, text, "absolute http or https URL")
	assert.Empty(t, gw.FetchCalls)
}

func TestWebFetch_DefaultsApply(t *testing.T) {
	ctx := context.Background()
	gw := websearch.NewMockGateway().WithPage(&ollama.FetchResult{Content: strings.Repeat("x", 5000)})
	srv := newTestServer(t, gw, Defaults{Truncate: true, MaxChars: 300})
	session := connectInMemory(t, ctx, srv)

	text, isErr := callText(t, ctx, session, ToolWebFetch, map[string]any{"url": "https://example.com"})
	require.False(t, isErr)
	assert.LessOrEqual(t, len([]rune(text)), 300)

	// Arguments win over defaults.
	text, isErr = callText(t, ctx, session, ToolWebFetch, map[string]any{"url": "https://example.com", "truncate": false})
	require.False(t, isErr)
	assert.Contains(t, text, strings.Repeat("x", 5000))

	srv.SetDefaults(Defaults{Truncate: true, MaxChars: 200})
	text, isErr = callText(t, ctx, session, ToolWebFetch, map[string]any{"url": "https://example.com"})
	require.False(t, isErr)
	assert.LessOrEqual(t, len([]rune(text)), 200)
	assert.Equal(t, Defaults{Truncate: true, MaxChars: 200}, srv.Defaults())
}

func TestSetDefaults_Concurrent(t *testing.T) {
	srv := newTestServer(t, websearch.NewMockGateway(), DefaultDefaults())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			srv.SetDefaults(Defaults{Truncate: true, MaxChars: 1000 + n})
		}(i)
		go func() {
			defer wg.Done()
			opts, err := srv.Defaults().callOptions(nil, nil)
			assert.NoError(t, err)
			assert.NotNil(t, opts.MaxChars)
		}()
	}
	wg.Wait()
}

func TestHandler_Health(t *testing.T) {
	srv := newTestServer(t, websearch.NewMockGateway(), DefaultDefaults())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestHandler_StreamableHTTP(t *testing.T) {
	ctx := context.Background()
	gw := websearch.NewMockGateway().WithResults(
		ollama.SearchResult{Title: "Go", URL: "https://go.dev", Content: "The Go language."},
	)
	srv := newTestServer(t, gw, DefaultDefaults())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "http-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: ts.URL + MCPPath}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	text, isErr := callText(t, ctx, session, ToolWebSearch, map[string]any{"query": "golang"})
	assert.False(t, isErr)
	assert.Contains(t, text, "### [Go](https://go.dev)")
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	srv := newTestServer(t, websearch.NewMockGateway(), DefaultDefaults())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()

	cancel()
	assert.NoError(t, <-done)
}
