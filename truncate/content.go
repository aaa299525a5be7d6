package truncate

import (
	"errors"
	"unicode/utf8"

	"github.com/randalmurphal/websearch/doctree"
)

// ErrBudgetTooSmall is returned when the content budget is negative, which
// means the fixed layout alone is larger than the character limit.
var ErrBudgetTooSmall = errors.New("content budget smaller than empty layout size")

// Content shrinks the tree's content leaves in place so that their combined
// length fits budget characters.
//
// A zero budget is a no-op. A negative budget returns ErrBudgetTooSmall and
// leaves the tree untouched.
//
// Leaves are processed once, left to right in document order. Each leaf is
// offered the current share. A leaf shorter than its share keeps its text and
// its unused characters are spread evenly over the leaves still to come. A
// leaf at least as long as its share is cut to exactly share characters.
func Content(root *doctree.RootNode, budget int) error {
	if budget == 0 {
		return nil
	}
	if budget < 0 {
		return ErrBudgetTooSmall
	}

	leaves := doctree.ContentNodes(root)
	if len(leaves) == 0 {
		return nil
	}

	share := budget / len(leaves)
	for i, leaf := range leaves {
		text := leaf.Text()
		extra := share - utf8.RuneCountInString(text)
		if extra > 0 {
			if remaining := len(leaves) - i - 1; remaining > 0 {
				share += extra / remaining
			}
			continue
		}
		leaf.SetText(Prefix(text, share))
	}
	return nil
}
