// Package truncate fits document content into a character budget.
//
// # Tree Truncation
//
// Content shrinks every content leaf of a doctree in place:
//
//	if err := truncate.Content(root, budget); err != nil {
//	    // errors.Is(err, truncate.ErrBudgetTooSmall)
//	}
//
// The budget is shared greedily, left to right. With leaves of 100, 60 and 80
// characters and a budget of 150 the share starts at 50 and every leaf is cut
// to 50. Short leaves keep their text and hand their slack to the leaves that
// follow them:
//
//	leaves 10, 200, 200 with budget 150:
//	  share 50, leaf 1 keeps 10, slack 40 / 2 -> share 70
//	  leaf 2 cut to 70, leaf 3 cut to 70
//
// The result depends on document order, not on content length. Slack from
// the last leaf is discarded.
//
// A zero budget leaves the tree alone. A negative budget fails with
// ErrBudgetTooSmall before anything is modified.
//
// # Helpers
//
//	truncate.Prefix(text, 80)    // first 80 characters, no marker
//	truncate.ToLength(text, 200) // at most 200 characters, "..." when cut
//
// # UTF-8 Support
//
// Lengths are counted in runes, so multi-byte characters are never split.
package truncate
