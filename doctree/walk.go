package doctree

// WalkFunc is called for every node visited by Walk.
// Returning false skips the node's children.
type WalkFunc func(n *Node) bool

// Walk visits the tree depth-first, parents before children, left-to-right.
func Walk(root *RootNode, fn WalkFunc) {
	if root == nil {
		return
	}
	for _, child := range root.Children {
		walkNode(child, fn)
	}
}

func walkNode(n *Node, fn WalkFunc) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		walkNode(child, fn)
	}
}

// ContentNodes returns every content leaf in document order.
func ContentNodes(root *RootNode) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if n.IsContent() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Count returns the number of nodes in the tree, excluding the root.
func Count(root *RootNode) int {
	total := 0
	Walk(root, func(*Node) bool {
		total++
		return true
	})
	return total
}
