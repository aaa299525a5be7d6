package tokens

// Budget splits a global character limit into fixed layout overhead and the
// part left over for truncatable content.
type Budget struct {
	// MaxChars is the total number of characters the output may use.
	MaxChars int

	// Overhead is the size of the output with every content leaf blanked.
	Overhead int
}

// NewBudget creates a budget for maxChars with the given overhead.
func NewBudget(maxChars, overhead int) Budget {
	return Budget{MaxChars: maxChars, Overhead: overhead}
}

// MeasureBudget creates a budget whose overhead is the size of layout
// according to counter. A nil counter counts runes.
func MeasureBudget(maxChars int, layout string, counter Counter) Budget {
	if counter == nil {
		counter = CharCounter{}
	}
	return NewBudget(maxChars, counter.Count(layout))
}

// Content returns the characters available for content. It is negative when
// the overhead alone exceeds MaxChars.
func (b Budget) Content() int {
	return b.MaxChars - b.Overhead
}

// Exceeded reports whether the overhead alone is larger than MaxChars.
func (b Budget) Exceeded() bool {
	return b.Content() < 0
}

// Fits reports whether a text of size chars fits in the whole budget.
func (b Budget) Fits(chars int) bool {
	return chars <= b.MaxChars
}
