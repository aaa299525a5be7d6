// Package format turns search and fetch results into bounded markdown.
//
// Formatting is two passes over a doctree. The first renders the tree with
// every content leaf blanked; the length of that output is the fixed layout
// overhead. The rest of the character limit is shared among content leaves by
// truncate.Content, and the tree is rendered again.
//
//	out, err := format.FormatSearch(query, items, format.Options{}.WithMaxChars(4000))
//
// Trees are modified in place, so each call needs its own tree. The schema
// builders return a fresh tree every time.
//
// Options left nil use DefaultTruncate and DefaultMaxChars. With truncation
// disabled the tree is rendered as is, whatever its size.
package format
