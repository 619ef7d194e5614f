package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dfreire/menukit/pkg/menu"
)

// Markdown renders the tree as a nested bullet list: two-space indent per
// level, leaves as links, groups as plain bullets.
type Markdown struct {
	IncludeInactive bool
}

func (r Markdown) RenderTree(w io.Writer, t *menu.Tree) error {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(t.Title())
	b.WriteString("\n\n")

	for _, n := range t.Items() {
		r.writeNode(&b, n, 0)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r Markdown) writeNode(b *strings.Builder, n menu.Node, depth int) {
	if !r.IncludeInactive && !n.Active() {
		return
	}

	b.WriteString(strings.Repeat("  ", depth))
	if url := n.URL(); url != "" {
		fmt.Fprintf(b, "- [%s](%s)", n.Title(), url)
	} else {
		b.WriteString("- ")
		b.WriteString(n.Title())
	}
	if !n.Active() {
		b.WriteString(" ~disabled~")
	}
	b.WriteString("\n")

	for _, child := range n.Children() {
		r.writeNode(b, child, depth+1)
	}
}
