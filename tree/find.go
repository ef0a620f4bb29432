package tree

// Find returns every node below (and including) root whose Type equals
// typ, in depth-first pre-order. Recursion always proceeds into
// Children, whether or not the current node matched. Nodes reachable
// via more than one path appear once; deduplication is by node
// identity, since two distinct nodes may carry equal shallow content.
// An empty result is not an error.
func Find(typ string, root *Node) []*Node {
	if root == nil {
		return nil
	}
	seen := make(map[*Node]bool)
	var result []*Node

	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		if n.Type == typ {
			result = append(result, n)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)

	return result
}
