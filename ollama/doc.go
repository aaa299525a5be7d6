// Package ollama is a client for the Ollama web search and web fetch APIs.
//
//	client := ollama.NewClient(os.Getenv("OLLAMA_API_KEY"),
//	    ollama.WithRateLimit(rate.Limit(2), 4))
//	results, err := client.Search(ctx, "golang generics", 5)
//	page, err := client.Fetch(ctx, "https://go.dev/doc")
//
// Both calls are POST requests with a JSON body and a bearer token. A
// response other than 200 becomes an *Error carrying the status and a short
// preview of the body. Its Err is ErrUnauthorized for 401 and 403,
// ErrRateLimited for 429 and ErrRequestFailed otherwise. Use IsRetryable to
// decide whether to try again.
//
// Fetch merges the "links" and "related_content" fields of the response into
// FetchResult.Links.
package ollama
