package doctree

import "fmt"

// Kind tags a node and selects its render routine.
type Kind string

// Built-in node kinds.
const (
	KindHeader   Kind = "header"
	KindResult   Kind = "result"
	KindMetadata Kind = "metadata"
	KindContent  Kind = "content"
	KindLinks    Kind = "links"
)

// Data keys used by the built-in kinds.
const (
	KeyText   = "text"
	KeyTitle  = "title"
	KeyURL    = "url"
	KeySource = "source"
	KeyLinks  = "links"
)

// Source identifies where a piece of remote content came from.
type Source string

// Known sources.
const (
	SourceSearch  Source = "search"
	SourceFetch   Source = "fetch"
	SourceUnknown Source = "unknown"
)

// Node is a single element of the document tree.
type Node struct {
	// Kind determines which Data keys are meaningful.
	Kind Kind

	// Data holds kind-specific fields.
	Data map[string]any

	// Children are owned by this node and ordered.
	Children []*Node
}

// RootNode is the entry point of a document tree.
type RootNode struct {
	// Metadata is caller bookkeeping. It is never rendered.
	Metadata map[string]any

	// Children are the top-level nodes in document order.
	Children []*Node
}

// NewHeader creates a header node with the given text.
func NewHeader(text string) *Node {
	return &Node{Kind: KindHeader, Data: map[string]any{KeyText: text}}
}

// NewResult creates a result node. Children are typically a single content node.
func NewResult(title, url string, source Source, children ...*Node) *Node {
	return &Node{
		Kind: KindResult,
		Data: map[string]any{
			KeyTitle:  title,
			KeyURL:    url,
			KeySource: source,
		},
		Children: children,
	}
}

// NewMetadata creates a metadata node describing a source and URL.
func NewMetadata(source Source, url string) *Node {
	return &Node{
		Kind: KindMetadata,
		Data: map[string]any{
			KeySource: source,
			KeyURL:    url,
		},
	}
}

// NewContent creates a content node. Its text is subject to truncation.
func NewContent(text string) *Node {
	return &Node{Kind: KindContent, Data: map[string]any{KeyText: text}}
}

// NewLinks creates a links node. A nil or empty slice is allowed.
func NewLinks(links []string) *Node {
	return &Node{Kind: KindLinks, Data: map[string]any{KeyLinks: links}}
}

// Field returns the value stored under key formatted as a string.
// Missing keys and nil values yield "".
func (n *Node) Field(key string) string {
	if n == nil || n.Data == nil {
		return ""
	}
	switch v := n.Data[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case Source:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// List returns the value stored under key as a string slice.
// Missing keys and unsupported types yield nil.
func (n *Node) List(key string) []string {
	if n == nil || n.Data == nil {
		return nil
	}
	switch v := n.Data[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}

// Text returns the node's text field.
func (n *Node) Text() string {
	return n.Field(KeyText)
}

// SetText replaces the node's text field.
func (n *Node) SetText(text string) {
	if n.Data == nil {
		n.Data = make(map[string]any, 1)
	}
	n.Data[KeyText] = text
}

// IsContent reports whether the node is a truncatable content leaf.
func (n *Node) IsContent() bool {
	return n != nil && n.Kind == KindContent
}

// Clone returns a deep copy of the node and its children.
// Data maps are copied one level deep; []string values are copied too.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Data: cloneData(n.Data)}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the tree.
func (r *RootNode) Clone() *RootNode {
	if r == nil {
		return nil
	}
	out := &RootNode{Metadata: cloneData(r.Metadata)}
	if r.Children != nil {
		out.Children = make([]*Node, len(r.Children))
		for i, child := range r.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

func cloneData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		if links, ok := v.([]string); ok && links != nil {
			cp := make([]string, len(links))
			copy(cp, links)
			v = cp
		}
		out[k] = v
	}
	return out
}
