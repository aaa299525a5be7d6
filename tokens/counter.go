package tokens

import (
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English text.
const DefaultCharsPerToken = 4.0

// Counter measures text.
type Counter interface {
	// Count returns the size of text in the counter's unit.
	Count(text string) int
}

// CharCounter counts Unicode code points. It is the unit of every
// character budget in this module.
type CharCounter struct{}

// NewCharCounter creates a code point counter.
func NewCharCounter() CharCounter {
	return CharCounter{}
}

// Count returns the number of runes in text.
func (CharCounter) Count(text string) int {
	return utf8.RuneCountInString(text)
}

// EstimatingCounter uses a character-to-token ratio for estimation.
// It is used to report the approximate model cost of rendered output.
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token.
	CharsPerToken float64
}

// NewEstimatingCounter creates a token counter with default settings.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{
		CharsPerToken: DefaultCharsPerToken,
	}
}

// Count estimates the number of tokens in the given text, rounded to the
// nearest integer.
func (c *EstimatingCounter) Count(text string) int {
	estimate := float64(utf8.RuneCountInString(text)) / c.CharsPerToken
	return int(estimate + 0.5)
}

// EstimateTokens is a convenience function using the default estimator.
func EstimateTokens(text string) int {
	return NewEstimatingCounter().Count(text)
}
