package menu

import (
	"fmt"
	"io"
	"strings"
)

// Entry is a leaf node: a single navigable link with no children.
type Entry struct {
	header
	url string
}

// NewEntry creates a leaf entry. The URL is immutable after construction.
func NewEntry(title, url string, opts ...Option) (*Entry, error) {
	h, err := newHeader(title, opts...)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("url is required")
	}
	return &Entry{header: h, url: url}, nil
}

func (e *Entry) URL() string {
	return e.url
}

func (e *Entry) Children() []Node {
	return nil
}

func (e *Entry) Render(w io.Writer, depth int) error {
	_, err := fmt.Fprintf(w, "%s%s\n", indent(depth), Line(e))
	return err
}

func (e *Entry) CountItems() int {
	return 1
}

func (e *Entry) DisableAll() {
	e.active = false
}

func (e *Entry) FindByURL(target string) Node {
	if e.url == target {
		return e
	}
	return nil
}
