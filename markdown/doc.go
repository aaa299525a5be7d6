// Package markdown renders a doctree as markdown for text-only consumers.
//
// Rendering dispatches on node kind through a registry owned by each
// Renderer. The built-in kinds produce:
//
//	header    raw text
//	result    ### [title](url) / **URL:** url / **Source:** source / children
//	metadata  **Source:** source / **URL:** url
//	content   **Content:** / --- / text / ---
//	links     **Links:** / - [url](url) per link, or - None
//
// Children of the root are joined by a single newline and trailing
// whitespace is removed. A kind without a render function fails with an
// *UnknownNodeTypeError, which matches ErrUnknownNodeType.
//
// New kinds are added per renderer:
//
//	r := markdown.New().Register("quote", func(r *markdown.Renderer, n *doctree.Node) (string, error) {
//	    return "> " + n.Text(), nil
//	})
//
// RenderOverhead renders the same tree with every content leaf blanked. The
// format package uses its length as the fixed cost of the layout.
package markdown
