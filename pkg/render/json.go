package render

import (
	"io"

	"github.com/dfreire/menukit/pkg/loader"
	"github.com/dfreire/menukit/pkg/menu"
)

// JSON renders the tree in the definition-file form, so the output round-trips
// through the loader.
type JSON struct{}

func (JSON) RenderTree(w io.Writer, t *menu.Tree) error {
	return loader.Save(w, t)
}
