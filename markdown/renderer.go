package markdown

import (
	"maps"
	"strings"

	"github.com/randalmurphal/websearch/doctree"
)

// RenderFunc renders a single node. Implementations that have children call
// r.RenderNode for each of them so dispatch and options carry through.
type RenderFunc func(r *Renderer, n *doctree.Node) (string, error)

// Renderer turns a document tree into markdown by dispatching on node kind.
// A Renderer is safe for concurrent use once configured; Register must not be
// called while renders are in progress.
type Renderer struct {
	funcs         map[doctree.Kind]RenderFunc
	ignoreContent bool
}

// New creates a renderer with the built-in kinds registered.
func New() *Renderer {
	r := &Renderer{funcs: make(map[doctree.Kind]RenderFunc, 5)}
	r.Register(doctree.KindHeader, renderHeader)
	r.Register(doctree.KindResult, renderResult)
	r.Register(doctree.KindMetadata, renderMetadata)
	r.Register(doctree.KindContent, renderContent)
	r.Register(doctree.KindLinks, renderLinks)
	return r
}

// Register adds or replaces the render function for kind.
func (r *Renderer) Register(kind doctree.Kind, fn RenderFunc) *Renderer {
	r.funcs[kind] = fn
	return r
}

// WithIgnoreContent returns a copy of the renderer that writes every content
// leaf as an empty string while keeping the surrounding markup.
func (r *Renderer) WithIgnoreContent(ignore bool) *Renderer {
	return &Renderer{funcs: maps.Clone(r.funcs), ignoreContent: ignore}
}

// Render renders the root's children in order, joined by newlines, with
// trailing whitespace removed. An empty tree renders to "".
func (r *Renderer) Render(root *doctree.RootNode) (string, error) {
	if root == nil || len(root.Children) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(root.Children))
	for _, child := range root.Children {
		out, err := r.RenderNode(child)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	return strings.TrimRight(strings.Join(parts, "\n"), whitespace), nil
}

// RenderNode renders one node with the function registered for its kind.
func (r *Renderer) RenderNode(n *doctree.Node) (string, error) {
	fn, ok := r.funcs[n.Kind]
	if !ok {
		return "", &UnknownNodeTypeError{Kind: n.Kind}
	}
	return fn(r, n)
}

// ContentText returns the text a content node should render, honouring
// WithIgnoreContent.
func (r *Renderer) ContentText(n *doctree.Node) string {
	if r.ignoreContent {
		return ""
	}
	return n.Text()
}

// Render renders root with a default renderer.
func Render(root *doctree.RootNode) (string, error) {
	return New().Render(root)
}

// RenderOverhead renders root with every content leaf blanked. Its length is
// the fixed markup cost of the tree.
func RenderOverhead(root *doctree.RootNode) (string, error) {
	return New().WithIgnoreContent(true).Render(root)
}
