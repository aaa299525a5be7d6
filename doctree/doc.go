// Package doctree provides the document tree that carries formatted web
// results from schema building through truncation to rendering.
//
// A tree is a RootNode holding an ordered list of Nodes. Each Node is tagged
// with a Kind that decides which Data keys are meaningful:
//
//   - header:   text
//   - result:   title, url, source (children: usually one content node)
//   - metadata: source, url
//   - content:  text (the only text subject to truncation)
//   - links:    links ([]string, may be empty)
//
// The model is deliberately unchecked. Adding a kind needs no change here,
// only a render function registered with the markdown package.
//
// # Traversal
//
// Walk visits nodes depth-first, left-to-right. ContentNodes returns the
// content leaves in that same document order:
//
//	root := &doctree.RootNode{Children: []*doctree.Node{
//	    doctree.NewHeader("Results"),
//	    doctree.NewResult("Go", "https://go.dev", doctree.SourceSearch,
//	        doctree.NewContent("The Go programming language")),
//	}}
//	leaves := doctree.ContentNodes(root) // one node
//
// # Ownership
//
// Children are exclusively owned by their parent. A tree is built per
// request, mutated at most once by truncation, rendered, and discarded.
// Trees must not be shared between goroutines.
package doctree
