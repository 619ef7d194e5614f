package menu

import (
	"fmt"
	"io"
)

// Tree owns the ordered sequence of top-level nodes. It is written once
// against the Node contract and never inspects the concrete kind of what it
// holds.
type Tree struct {
	title string
	items []Node
}

// NewTree creates an empty menu tree. The title is used as the banner line
// when rendering.
func NewTree(title string) *Tree {
	return &Tree{title: title}
}

func (t *Tree) Title() string {
	return t.title
}

// Items returns the top-level sequence in insertion order.
func (t *Tree) Items() []Node {
	return t.items
}

// AddItem appends a node, leaf or group, to the top-level sequence.
func (t *Tree) AddItem(n Node) error {
	if n == nil {
		return fmt.Errorf("node is required")
	}
	t.items = append(t.items, n)
	return nil
}

// Render writes the banner line followed by each top-level node at depth 0.
func (t *Tree) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "===== %s =====\n", t.title); err != nil {
		return err
	}
	for _, item := range t.items {
		if err := item.Render(w, 0); err != nil {
			return err
		}
	}
	return nil
}

// TotalItems returns the number of leaf entries in the whole tree.
func (t *Tree) TotalItems() int {
	total := 0
	for _, item := range t.items {
		total += item.CountItems()
	}
	return total
}

// FindByURL searches the top-level nodes in order, depth-first, and returns
// the first leaf whose URL equals url, or nil when nothing matches.
func (t *Tree) FindByURL(url string) Node {
	for _, item := range t.items {
		if found := item.FindByURL(url); found != nil {
			return found
		}
	}
	return nil
}

// DisableAll marks every node in the tree inactive.
func (t *Tree) DisableAll() {
	for _, item := range t.items {
		item.DisableAll()
	}
}
