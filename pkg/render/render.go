package render

import (
	"io"

	"github.com/dfreire/menukit/pkg/menu"
)

// Renderer writes a menu tree to a sink in one output format. The tree's own
// Render method produces the canonical text form; renderers here are the
// alternate sinks layered on the same traversal contract.
type Renderer interface {
	RenderTree(w io.Writer, t *menu.Tree) error
}

// ForFormat returns the renderer for a format name: text, markdown or json.
func ForFormat(format string, includeInactive bool) (Renderer, bool) {
	switch format {
	case "text":
		return Text{Banner: true, IncludeInactive: includeInactive}, true
	case "markdown":
		return Markdown{IncludeInactive: includeInactive}, true
	case "json":
		return JSON{}, true
	}
	return nil, false
}
