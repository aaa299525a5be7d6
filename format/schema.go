package format

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/websearch/doctree"
)

// SearchItem is one search hit to be rendered.
type SearchItem struct {
	Title   string
	URL     string
	Content string
	Source  doctree.Source
}

// FetchPage is a fetched page to be rendered.
type FetchPage struct {
	Title   string
	URL     string
	Content string
	Links   []string
	Source  doctree.Source
}

// SearchSchema builds the document tree for a set of search results.
func SearchSchema(query string, results []SearchItem) *doctree.RootNode {
	root := &doctree.RootNode{
		Metadata: map[string]any{
			"query":         query,
			"total_results": len(results),
		},
	}

	if len(results) == 0 {
		root.Children = []*doctree.Node{
			doctree.NewHeader(fmt.Sprintf("No results found for query: %s", query)),
		}
		return root
	}

	root.Children = make([]*doctree.Node, 0, len(results)+1)
	root.Children = append(root.Children, doctree.NewHeader(`Search Results — "`+query+`"`))
	for _, item := range results {
		source := item.Source
		if source == "" {
			source = doctree.SourceSearch
		}
		root.Children = append(root.Children,
			doctree.NewResult(item.Title, item.URL, source, doctree.NewContent(item.Content)))
	}
	return root
}

// FetchSchema builds the document tree for a fetched page. Blank content and
// empty link lists are left out; a page with neither gets a placeholder
// header.
func FetchSchema(page FetchPage) *doctree.RootNode {
	source := page.Source
	if source == "" {
		source = doctree.SourceFetch
	}

	root := &doctree.RootNode{
		Metadata: map[string]any{
			"url":    page.URL,
			"source": string(source),
		},
		Children: []*doctree.Node{doctree.NewMetadata(source, page.URL)},
	}
	if page.Title != "" {
		root.Metadata["title"] = page.Title
	}

	hasContent := strings.TrimSpace(page.Content) != ""
	if !hasContent && len(page.Links) == 0 {
		root.Children = append(root.Children,
			doctree.NewHeader(fmt.Sprintf("No content found for URL: %s", page.URL)))
		return root
	}

	if hasContent {
		root.Children = append(root.Children, doctree.NewContent(page.Content))
	}
	if len(page.Links) > 0 {
		root.Children = append(root.Children, doctree.NewLinks(page.Links))
	}
	return root
}

// FormatSearch builds and formats a search result document.
func FormatSearch(query string, results []SearchItem, opts Options) (string, error) {
	return Format(SearchSchema(query, results), opts)
}

// FormatFetch builds and formats a fetched page document.
func FormatFetch(page FetchPage, opts Options) (string, error) {
	return Format(FetchSchema(page), opts)
}

// FormatSearch builds and formats a search result document.
func (f *Formatter) FormatSearch(query string, results []SearchItem, opts Options) (string, error) {
	return f.Format(SearchSchema(query, results), opts)
}

// FormatFetch builds and formats a fetched page document.
func (f *Formatter) FormatFetch(page FetchPage, opts Options) (string, error) {
	return f.Format(FetchSchema(page), opts)
}
