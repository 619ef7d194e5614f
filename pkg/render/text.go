package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dfreire/menukit/pkg/menu"
)

// Text renders the canonical indented line format, optionally pruning
// disabled subtrees.
type Text struct {
	Banner          bool
	IncludeInactive bool
}

func (r Text) RenderTree(w io.Writer, t *menu.Tree) error {
	if r.Banner {
		if _, err := fmt.Fprintf(w, "===== %s =====\n", t.Title()); err != nil {
			return err
		}
	}
	for _, n := range t.Items() {
		if err := r.writeNode(w, n, 0); err != nil {
			return err
		}
	}
	return nil
}

func (r Text) writeNode(w io.Writer, n menu.Node, depth int) error {
	if !r.IncludeInactive && !n.Active() {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), menu.Line(n)); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := r.writeNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
