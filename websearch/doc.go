// Package websearch runs web searches and page fetches through a Gateway and
// renders the results as markdown that fits a character limit.
//
//	svc := websearch.NewService(ollama.NewClient(apiKey))
//	out, err := svc.Search(ctx, websearch.SearchRequest{Query: "go generics"})
//
// Requests are validated before the gateway is called: queries must not be
// blank, result counts must be within 1..10 and fetch URLs must be absolute
// http or https URLs.
package websearch
