// Package websearch renders web search and web fetch results as markdown
// that fits a character budget.
//
// The module is split so each layer can be used on its own:
//
//   - doctree: the document tree (header, result, metadata, content, links)
//   - truncate: greedy sharing of a character budget among content leaves
//   - markdown: kind-dispatched rendering, with content blanking for overhead
//   - tokens: character counting and budget arithmetic
//   - format: the two-pass pipeline and the search/fetch schema builders
//   - ollama: client for the Ollama web search and web fetch APIs
//   - websearch: validated search and fetch use cases over a Gateway
//   - mcpserver: the web_search and web_fetch MCP tools
//   - config: YAML/TOML/env configuration with file watching
//
// # Quick Start
//
// Formatting results you already have:
//
//	import "github.com/randalmurphal/websearch/format"
//	out, err := format.FormatSearch("go generics", items, format.Options{}.WithMaxChars(4000))
//
// Searching through the Ollama API:
//
//	import "github.com/randalmurphal/websearch/websearch"
//	svc := websearch.NewService(ollama.NewClient(apiKey))
//	out, err := svc.Search(ctx, websearch.SearchRequest{Query: "go generics"})
//
// Running the MCP server:
//
//	websearch serve --transport http --addr :8080
//
// # Budget Rules
//
// Lengths are counted in characters (runes). The layout overhead is measured
// by rendering with content blanked, and only content text is ever shortened.
// A content budget of zero leaves the tree untouched; a negative one is an
// error and leaves the tree untouched too.
package websearch
