package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/randalmurphal/websearch/websearch"
)

// Tool names.
const (
	ToolWebSearch = "web_search"
	ToolWebFetch  = "web_fetch"
)

// ErrInvalidMaxChars indicates a negative max_chars argument.
var ErrInvalidMaxChars = errors.New("max_chars must not be negative")

// SearchInput is the argument object of the web_search tool.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"The search query string"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"Maximum results to return (1-10; server default when omitted)"`
	Truncate   *bool  `json:"truncate,omitempty" jsonschema:"Whether to truncate content (default true)"`
	MaxChars   *int   `json:"max_chars,omitempty" jsonschema:"Maximum characters to return (default 120000)"`
}

// FetchInput is the argument object of the web_fetch tool.
type FetchInput struct {
	URL      string `json:"url" jsonschema:"The URL to fetch content from"`
	Truncate *bool  `json:"truncate,omitempty" jsonschema:"Whether to truncate the content"`
	MaxChars *int   `json:"max_chars,omitempty" jsonschema:"Maximum number of characters to return"`
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolWebSearch,
		Description: "A tool that provides access to searching the internet using Ollama's web search API.",
		InputSchema: searchInputSchema(),
	}, s.handleWebSearch)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolWebFetch,
		Description: "A tool that provides access to fetching web page content using Ollama's web fetch API.",
		InputSchema: fetchInputSchema(),
	}, s.handleWebFetch)
}

func (s *Server) handleWebSearch(ctx context.Context, _ *sdkmcp.CallToolRequest, in SearchInput) (*sdkmcp.CallToolResult, any, error) {
	d := s.Defaults()
	opts, err := d.callOptions(in.Truncate, in.MaxChars)
	if err != nil {
		return s.errorResult(ToolWebSearch, err), nil, nil
	}

	out, err := s.svc.Search(ctx, websearch.SearchRequest{
		Query:      in.Query,
		MaxResults: d.maxResults(in.MaxResults),
		Options:    opts,
	})
	if err != nil {
		return s.errorResult(ToolWebSearch, err), nil, nil
	}
	return textResult(out), nil, nil
}

func (s *Server) handleWebFetch(ctx context.Context, _ *sdkmcp.CallToolRequest, in FetchInput) (*sdkmcp.CallToolResult, any, error) {
	opts, err := s.Defaults().callOptions(in.Truncate, in.MaxChars)
	if err != nil {
		return s.errorResult(ToolWebFetch, err), nil, nil
	}

	out, err := s.svc.Fetch(ctx, websearch.FetchRequest{URL: in.URL, Options: opts})
	if err != nil {
		return s.errorResult(ToolWebFetch, err), nil, nil
	}
	return textResult(out), nil, nil
}

func (s *Server) errorResult(tool string, err error) *sdkmcp.CallToolResult {
	s.logger.Warn("tool call failed",
		slog.String("tool", tool),
		slog.Any("error", err))
	result := textResult(err.Error())
	result.IsError = true
	return result
}

func textResult(text string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}
}

// Optional properties carry no schema default so that omitted values fall
// through to the server Defaults.
func searchInputSchema() *jsonschema.Schema {
	schema := mustSchema[SearchInput]()
	bound(schema, "max_results", 1, websearch.MaxMaxResults)
	bound(schema, "max_chars", 0, -1)
	return schema
}

func fetchInputSchema() *jsonschema.Schema {
	schema := mustSchema[FetchInput]()
	bound(schema, "max_chars", 0, -1)
	return schema
}

// InputSchemas returns the input schema advertised for each tool, keyed by
// tool name.
func InputSchemas() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		ToolWebSearch: searchInputSchema(),
		ToolWebFetch:  fetchInputSchema(),
	}
}

func mustSchema[T any]() *jsonschema.Schema {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		panic(fmt.Sprintf("mcpserver: infer input schema: %v", err))
	}
	return schema
}

// bound sets integer limits on a property. A negative max leaves the upper
// bound open.
func bound(schema *jsonschema.Schema, prop string, minimum, maximum int) {
	p := schema.Properties[prop]
	lo := float64(minimum)
	p.Minimum = &lo
	if maximum >= 0 {
		hi := float64(maximum)
		p.Maximum = &hi
	}
}
