package ollama

// SearchResult is a single hit returned by the web search API.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// FetchResult is a page returned by the web fetch API.
type FetchResult struct {
	Title   string
	URL     string
	Content string
	Links   []string
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

type fetchRequest struct {
	URL string `json:"url"`
}

type relatedContent struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type fetchResponse struct {
	Title          string           `json:"title"`
	URL            string           `json:"url"`
	Content        string           `json:"content"`
	Links          []string         `json:"links"`
	RelatedContent []relatedContent `json:"related_content"`
}

// links merges plain links and related content URLs, dropping blanks and
// duplicates while keeping order.
func (r *fetchResponse) links() []string {
	seen := make(map[string]struct{}, len(r.Links)+len(r.RelatedContent))
	out := make([]string, 0, len(r.Links)+len(r.RelatedContent))
	add := func(link string) {
		if link == "" {
			return
		}
		if _, ok := seen[link]; ok {
			return
		}
		seen[link] = struct{}{}
		out = append(out, link)
	}
	for _, link := range r.Links {
		add(link)
	}
	for _, rc := range r.RelatedContent {
		add(rc.URL)
	}
	return out
}
