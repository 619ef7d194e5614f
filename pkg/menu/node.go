package menu

import (
	"fmt"
	"io"
	"strings"
)

// Node is the contract every menu entry satisfies, leaf or group. Callers
// operate on a tree through this interface alone and never branch on the
// concrete kind: a new cross-cutting operation is added here once and
// implemented once per variant.
type Node interface {
	// Title returns the display name.
	Title() string
	// Icon returns the decorative icon, or "" when none was set.
	Icon() string
	// Active reports whether the entry is currently enabled.
	Active() bool
	// URL returns the target URL of a leaf entry; always "" for groups.
	URL() string
	// Children returns the ordered child sequence. Leaf entries have none.
	Children() []Node

	// Render writes one line per node in pre-order, indented by depth.
	Render(w io.Writer, depth int) error
	// CountItems returns the number of leaf entries in the subtree.
	CountItems() int
	// DisableAll marks the node and every descendant inactive.
	DisableAll()
	// FindByURL returns the first leaf in pre-order whose URL equals target,
	// or nil when nothing matches.
	FindByURL(target string) Node
}

// Option configures a node at construction time.
type Option func(*header)

// WithIcon sets the decorative icon shown before the title.
func WithIcon(icon string) Option {
	return func(h *header) {
		h.icon = icon
	}
}

// WithDisabled constructs the node inactive. Used when reloading persisted
// state; newly built entries default to active.
func WithDisabled() Option {
	return func(h *header) {
		h.active = false
	}
}

// header carries the fields shared by both node kinds.
type header struct {
	title  string
	icon   string
	active bool
}

func newHeader(title string, opts ...Option) (header, error) {
	if strings.TrimSpace(title) == "" {
		return header{}, fmt.Errorf("title is required")
	}
	h := header{title: title, active: true}
	for _, opt := range opts {
		opt(&h)
	}
	return h, nil
}

func (h *header) Title() string {
	return h.title
}

func (h *header) Icon() string {
	return h.icon
}

func (h *header) Active() bool {
	return h.active
}

// Line returns the single-line textual form of a node without indentation:
// an active marker, the icon when present, the title, and for leaves the URL.
func Line(n Node) string {
	marker := "[ ]"
	if n.Active() {
		marker = "[*]"
	}

	label := n.Title()
	if icon := n.Icon(); icon != "" {
		label = icon + " " + label
	}

	if url := n.URL(); url != "" {
		return fmt.Sprintf("- %s %s (%s)", marker, label, url)
	}
	return fmt.Sprintf("- %s %s", marker, label)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
