package menu

// WalkFunc visits a node at the given depth. Returning false stops the walk.
type WalkFunc func(n Node, depth int) bool

// Walk visits n and its subtree in pre-order: the node first, then each
// child's whole subtree before the next sibling.
func Walk(n Node, fn WalkFunc) {
	walk(n, 0, fn)
}

// WalkAll walks a sequence of nodes in order, as Walk does for one.
func WalkAll(nodes []Node, fn WalkFunc) {
	for _, n := range nodes {
		if !walk(n, 0, fn) {
			return
		}
	}
}

func walk(n Node, depth int, fn WalkFunc) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children() {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// Flatten returns every node reachable from nodes as a flat pre-order list.
func Flatten(nodes []Node) []Node {
	var flat []Node
	WalkAll(nodes, func(n Node, _ int) bool {
		flat = append(flat, n)
		return true
	})
	return flat
}

// CountActive returns the number of leaf entries that are still active.
func CountActive(nodes []Node) int {
	count := 0
	WalkAll(nodes, func(n Node, _ int) bool {
		if n.Active() && n.URL() != "" {
			count++
		}
		return true
	})
	return count
}

// MaxDepth returns the number of levels in the deepest branch. An empty
// sequence has depth 0.
func MaxDepth(nodes []Node) int {
	deepest := 0
	WalkAll(nodes, func(_ Node, depth int) bool {
		if depth+1 > deepest {
			deepest = depth + 1
		}
		return true
	})
	return deepest
}

// FindByTitle returns the first node in pre-order whose title equals title,
// or nil when nothing matches. Unlike FindByURL, groups are candidates too.
func FindByTitle(nodes []Node, title string) Node {
	var found Node
	WalkAll(nodes, func(n Node, _ int) bool {
		if n.Title() == title {
			found = n
			return false
		}
		return true
	})
	return found
}
