package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dfreire/menukit/pkg/menu"
)

// Node is the JSON definition form of a menu entry. A node carrying a URL is
// a leaf; anything else is a group. Active defaults to true when omitted.
type Node struct {
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Active   *bool  `json:"active,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Definition is the top-level shape of a menu definition file.
type Definition struct {
	Title string `json:"title"`
	Items []Node `json:"items"`
}

// Load parses a menu definition and builds the tree.
func Load(r io.Reader) (*menu.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read menu definition: %w", err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("cannot parse menu definition: %w", err)
	}

	if strings.TrimSpace(def.Title) == "" {
		def.Title = "Menu"
	}

	tree := menu.NewTree(def.Title)
	for _, item := range def.Items {
		node, err := buildNode(item)
		if err != nil {
			return nil, err
		}
		if err := tree.AddItem(node); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

// LoadFile reads and parses a menu definition file.
func LoadFile(path string) (*menu.Tree, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open menu definition: %w", err)
	}
	defer file.Close()

	slog.Debug("loading menu definition", "file", path)
	return Load(file)
}

func buildNode(def Node) (menu.Node, error) {
	var opts []menu.Option
	if def.Icon != "" {
		opts = append(opts, menu.WithIcon(def.Icon))
	}
	if def.Active != nil && !*def.Active {
		opts = append(opts, menu.WithDisabled())
	}

	if def.URL != "" {
		if len(def.Children) > 0 {
			return nil, fmt.Errorf("entry %q cannot carry both a url and children", def.Title)
		}
		entry, err := menu.NewEntry(def.Title, def.URL, opts...)
		if err != nil {
			return nil, fmt.Errorf("invalid entry %q: %w", def.Title, err)
		}
		return entry, nil
	}

	group, err := menu.NewGroup(def.Title, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid group %q: %w", def.Title, err)
	}
	for _, childDef := range def.Children {
		child, err := buildNode(childDef)
		if err != nil {
			return nil, err
		}
		if err := group.AddChild(child); err != nil {
			return nil, err
		}
	}
	return group, nil
}

// Save writes the tree back in the definition form, indented.
func Save(w io.Writer, t *menu.Tree) error {
	def := Definition{
		Title: t.Title(),
		Items: make([]Node, 0, len(t.Items())),
	}
	for _, n := range t.Items() {
		def.Items = append(def.Items, definitionNode(n))
	}

	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode menu definition: %w", err)
	}
	data = append(data, '\n')

	_, err = w.Write(data)
	return err
}

// SaveFile writes the tree to a definition file, replacing its contents.
func SaveFile(path string, t *menu.Tree) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write menu definition: %w", err)
	}
	defer file.Close()

	slog.Debug("saving menu definition", "file", path)
	return Save(file, t)
}

func definitionNode(n menu.Node) Node {
	def := Node{
		Title: n.Title(),
		URL:   n.URL(),
		Icon:  n.Icon(),
	}
	if !n.Active() {
		inactive := false
		def.Active = &inactive
	}
	if children := n.Children(); len(children) > 0 {
		def.Children = make([]Node, 0, len(children))
		for _, child := range children {
			def.Children = append(def.Children, definitionNode(child))
		}
	}
	return def
}
