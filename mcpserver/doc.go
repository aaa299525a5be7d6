// Package mcpserver exposes web search and web fetch as Model Context
// Protocol tools.
//
// Two tools are registered:
//
//	web_search {query, max_results?, truncate?, max_chars?}
//	web_fetch  {url, truncate?, max_chars?}
//
// Arguments left out fall back to the server Defaults, which can be swapped
// at runtime with SetDefaults. Failures come back as text results with
// IsError set, so the client sees the message instead of a protocol error.
//
// The server runs over stdio with ServeStdio, or over streamable HTTP with
// Handler and ListenAndServe.
package mcpserver
