package format

const (
	// DefaultMaxChars is the output limit used when Options.MaxChars is nil.
	DefaultMaxChars = 120000

	// DefaultTruncate is used when Options.Truncate is nil.
	DefaultTruncate = true
)

// Options controls truncation of the rendered output. Nil fields fall back
// to DefaultTruncate and DefaultMaxChars.
type Options struct {
	Truncate *bool `json:"truncate,omitempty" yaml:"truncate,omitempty"`
	MaxChars *int  `json:"max_chars,omitempty" yaml:"max_chars,omitempty"`
}

// Resolved returns the effective truncate flag and character limit.
func (o Options) Resolved() (truncate bool, maxChars int) {
	truncate, maxChars = DefaultTruncate, DefaultMaxChars
	if o.Truncate != nil {
		truncate = *o.Truncate
	}
	if o.MaxChars != nil {
		maxChars = *o.MaxChars
	}
	return truncate, maxChars
}

// WithTruncate returns a copy of o with Truncate set.
func (o Options) WithTruncate(v bool) Options {
	o.Truncate = Bool(v)
	return o
}

// WithMaxChars returns a copy of o with MaxChars set.
func (o Options) WithMaxChars(n int) Options {
	o.MaxChars = Int(n)
	return o
}

// Merge returns o with nil fields taken from fallback.
func (o Options) Merge(fallback Options) Options {
	if o.Truncate == nil {
		o.Truncate = fallback.Truncate
	}
	if o.MaxChars == nil {
		o.MaxChars = fallback.MaxChars
	}
	return o
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to n.
func Int(n int) *int { return &n }
