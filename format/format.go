package format

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/randalmurphal/websearch/doctree"
	"github.com/randalmurphal/websearch/markdown"
	"github.com/randalmurphal/websearch/tokens"
	"github.com/randalmurphal/websearch/truncate"
)

// Formatter renders document trees to markdown within a character limit.
// A Formatter is safe for concurrent use.
type Formatter struct {
	renderer *markdown.Renderer
	blank    *markdown.Renderer
	counter  tokens.Counter
	logger   *slog.Logger
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithRenderer sets the renderer used for both passes.
func WithRenderer(r *markdown.Renderer) FormatterOption {
	return func(f *Formatter) { f.renderer = r }
}

// WithCounter sets how rendered output is measured. The counter must agree
// with the unit truncation works in, which is characters.
func WithCounter(c tokens.Counter) FormatterOption {
	return func(f *Formatter) { f.counter = c }
}

// WithLogger enables logging of truncation decisions.
func WithLogger(l *slog.Logger) FormatterOption {
	return func(f *Formatter) { f.logger = l }
}

// NewFormatter creates a formatter with a default renderer and a character
// counter.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	if f.renderer == nil {
		f.renderer = markdown.New()
	}
	if f.counter == nil {
		f.counter = tokens.NewCharCounter()
	}
	f.blank = f.renderer.WithIgnoreContent(true)
	return f
}

var defaultFormatter = NewFormatter()

// Format renders root with the default formatter.
func Format(root *doctree.RootNode, opts Options) (string, error) {
	return defaultFormatter.Format(root, opts)
}

// Format renders root to markdown. When truncation is enabled the content
// leaves of root are shortened in place so the output fits opts' limit.
func (f *Formatter) Format(root *doctree.RootNode, opts Options) (string, error) {
	doTruncate, maxChars := opts.Resolved()
	if !doTruncate {
		return f.renderer.Render(root)
	}

	layout, err := f.blank.Render(root)
	if err != nil {
		return "", fmt.Errorf("measure overhead: %w", err)
	}
	budget := tokens.MeasureBudget(maxChars, layout, f.counter)
	if budget.Exceeded() {
		f.log(slog.LevelWarn, "markup exceeds character limit",
			slog.Int("max_chars", budget.MaxChars),
			slog.Int("overhead", budget.Overhead))
	}

	if err := truncate.Content(root, budget.Content()); err != nil {
		return "", fmt.Errorf("truncate to %d chars (overhead %d): %w",
			budget.MaxChars, budget.Overhead, err)
	}

	out, err := f.renderer.Render(root)
	if err != nil {
		return "", err
	}
	outChars := f.counter.Count(out)
	f.log(slog.LevelDebug, "formatted document",
		slog.Int("max_chars", budget.MaxChars),
		slog.Int("overhead", budget.Overhead),
		slog.Int("content_budget", budget.Content()),
		slog.Int("nodes", doctree.Count(root)),
		slog.Int("content_leaves", len(doctree.ContentNodes(root))),
		slog.Int("output_chars", outChars),
		slog.Bool("fits", budget.Fits(outChars)),
		slog.Int("approx_tokens", tokens.EstimateTokens(out)))
	return out, nil
}

func (f *Formatter) log(level slog.Level, msg string, attrs ...slog.Attr) {
	if f.logger == nil {
		return
	}
	f.logger.LogAttrs(context.Background(), level, msg, attrs...)
}
