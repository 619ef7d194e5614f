package menu

import (
	"fmt"
	"io"
)

// Group is a named container holding further entries and groups, to arbitrary
// depth. Every operation recurses uniformly over the children with no
// special-casing of child kind.
type Group struct {
	header
	children []Node
}

// NewGroup creates a group with an empty child sequence.
func NewGroup(title string, opts ...Option) (*Group, error) {
	h, err := newHeader(title, opts...)
	if err != nil {
		return nil, err
	}
	return &Group{header: h}, nil
}

// AddChild appends a node, leaf or group, to the child sequence. Insertion
// order is the rendering and search order. A node must belong to at most one
// parent sequence; keeping the tree acyclic is the builder's responsibility.
func (g *Group) AddChild(n Node) error {
	if n == nil {
		return fmt.Errorf("child node is required")
	}
	g.children = append(g.children, n)
	return nil
}

// URL returns "". Groups are containers, not navigable links.
func (g *Group) URL() string {
	return ""
}

func (g *Group) Children() []Node {
	return g.children
}

func (g *Group) Render(w io.Writer, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", indent(depth), Line(g)); err != nil {
		return err
	}
	for _, child := range g.children {
		if err := child.Render(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// CountItems sums the leaf counts of the children. The group itself
// contributes nothing to the total.
func (g *Group) CountItems() int {
	total := 0
	for _, child := range g.children {
		total += child.CountItems()
	}
	return total
}

func (g *Group) DisableAll() {
	for _, child := range g.children {
		child.DisableAll()
	}
	g.active = false
}

// FindByURL searches each child's subtree in order and returns the first
// match. Groups themselves never match, even for an empty target.
func (g *Group) FindByURL(target string) Node {
	for _, child := range g.children {
		if found := child.FindByURL(target); found != nil {
			return found
		}
	}
	return nil
}
