package mcp

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/dfreire/menukit/pkg/loader"
	"github.com/dfreire/menukit/pkg/menu"
	"github.com/dfreire/menukit/pkg/render"
	"github.com/dfreire/menukit/pkg/search"
)

const (
	ToolShow    = "menu_show"
	ToolList    = "menu_list"
	ToolCount   = "menu_count"
	ToolFind    = "menu_find"
	ToolSearch  = "menu_search"
	ToolDisable = "menu_disable"
)

// ToolBuilder wires menu operations into MCP tool handlers. Every handler
// loads the definition file fresh, so edits made outside the server are
// picked up without a restart.
type ToolBuilder struct {
	menuFile string
}

// NewToolBuilder creates a builder bound to the given menu definition file.
func NewToolBuilder(menuFile string) ToolBuilder {
	return ToolBuilder{menuFile: menuFile}
}

func (b ToolBuilder) loadTree() (*menu.Tree, error) {
	return loader.LoadFile(b.menuFile)
}

// BuildTools constructs the requested tools in the order provided.
func (b ToolBuilder) BuildTools(toolNames []string) ([]mcpserver.ServerTool, error) {
	factories := map[string]func() mcpserver.ServerTool{
		ToolShow:    b.buildShowTool,
		ToolList:    b.buildListTool,
		ToolCount:   b.buildCountTool,
		ToolFind:    b.buildFindTool,
		ToolSearch:  b.buildSearchTool,
		ToolDisable: b.buildDisableTool,
	}

	var tools []mcpserver.ServerTool
	for _, name := range toolNames {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s", name)
		}
		tools = append(tools, factory())
	}
	return tools, nil
}

// nodeView is the JSON form of a node in tool results.
type nodeView struct {
	Title  string `json:"title"`
	URL    string `json:"url,omitempty"`
	Icon   string `json:"icon,omitempty"`
	Active bool   `json:"active"`
	Depth  int    `json:"depth"`
}

func newNodeView(n menu.Node, depth int) nodeView {
	return nodeView{
		Title:  n.Title(),
		URL:    n.URL(),
		Icon:   n.Icon(),
		Active: n.Active(),
		Depth:  depth,
	}
}

func (b ToolBuilder) buildShowTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolShow,
			mcptypes.WithDescription("Render the menu tree"),
			mcptypes.WithString("format",
				mcptypes.Description("Output format: text or markdown"),
				mcptypes.DefaultString("text"),
			),
			mcptypes.WithBoolean("include_inactive",
				mcptypes.Description("Include disabled entries"),
				mcptypes.DefaultBool(true),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			format := req.GetString("format", "text")
			if format != "text" && format != "markdown" {
				return mcptypes.NewToolResultError("format must be 'text' or 'markdown'"), nil
			}
			includeInactive := req.GetBool("include_inactive", true)

			tree, err := b.loadTree()
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot load menu", err), nil
			}

			renderer, _ := render.ForFormat(format, includeInactive)
			var buf bytes.Buffer
			if err := renderer.RenderTree(&buf, tree); err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot render menu", err), nil
			}

			return mcptypes.NewToolResultText(buf.String()), nil
		},
	}
}

func (b ToolBuilder) buildListTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolList,
			mcptypes.WithDescription("List every menu node as a flat pre-order list"),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			tree, err := b.loadTree()
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot load menu", err), nil
			}

			items := make([]nodeView, 0)
			menu.WalkAll(tree.Items(), func(n menu.Node, depth int) bool {
				items = append(items, newNodeView(n, depth))
				return true
			})

			return mcptypes.NewToolResultJSON(map[string]any{"items": items})
		},
	}
}

func (b ToolBuilder) buildCountTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolCount,
			mcptypes.WithDescription("Count the leaf entries in the menu"),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			tree, err := b.loadTree()
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot load menu", err), nil
			}

			return mcptypes.NewToolResultJSON(map[string]any{
				"total":  tree.TotalItems(),
				"active": menu.CountActive(tree.Items()),
			})
		},
	}
}

func (b ToolBuilder) buildFindTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolFind,
			mcptypes.WithDescription("Find the menu entry for a URL"),
			mcptypes.WithString("url",
				mcptypes.Description("Exact URL to look up"),
				mcptypes.Required(),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			url := req.GetString("url", "")
			if url == "" {
				return mcptypes.NewToolResultError("url is required"), nil
			}

			tree, err := b.loadTree()
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot load menu", err), nil
			}

			found := tree.FindByURL(url)
			if found == nil {
				return mcptypes.NewToolResultJSON(map[string]any{"found": false})
			}
			return mcptypes.NewToolResultJSON(map[string]any{
				"found": true,
				"entry": newNodeView(found, 0),
			})
		},
	}
}

func (b ToolBuilder) buildSearchTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolSearch,
			mcptypes.WithDescription("Search menu titles by text or regular expression"),
			mcptypes.WithString("pattern",
				mcptypes.Description("Search text or regular expression"),
				mcptypes.Required(),
			),
			mcptypes.WithBoolean("regexp",
				mcptypes.Description("Treat pattern as regular expression"),
				mcptypes.DefaultBool(false),
			),
			mcptypes.WithBoolean("ignore_case",
				mcptypes.Description("Case-insensitive search"),
				mcptypes.DefaultBool(false),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			pattern := strings.TrimSpace(req.GetString("pattern", ""))
			if pattern == "" {
				return mcptypes.NewToolResultError("pattern is required"), nil
			}

			tree, err := b.loadTree()
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot load menu", err), nil
			}

			results := search.Search(
				tree.Items(),
				pattern,
				req.GetBool("regexp", false),
				req.GetBool("ignore_case", false),
			)

			return mcptypes.NewToolResultJSON(map[string]any{"results": results})
		},
	}
}

func (b ToolBuilder) buildDisableTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolDisable,
			mcptypes.WithDescription("Disable a subtree and write the definition file back"),
			mcptypes.WithString("url",
				mcptypes.Description("URL of the entry to disable"),
			),
			mcptypes.WithString("title",
				mcptypes.Description("Title of the node to disable (groups included)"),
			),
			mcptypes.WithBoolean("all",
				mcptypes.Description("Disable every node in the menu"),
				mcptypes.DefaultBool(false),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			url := req.GetString("url", "")
			title := req.GetString("title", "")
			all := req.GetBool("all", false)

			selectors := 0
			for _, set := range []bool{url != "", title != "", all} {
				if set {
					selectors++
				}
			}
			if selectors != 1 {
				return mcptypes.NewToolResultError("provide exactly one of url, title or all"), nil
			}

			tree, err := b.loadTree()
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot load menu", err), nil
			}

			switch {
			case all:
				tree.DisableAll()
			case url != "":
				node := tree.FindByURL(url)
				if node == nil {
					return mcptypes.NewToolResultError(fmt.Sprintf("no entry found for url %q", url)), nil
				}
				node.DisableAll()
			default:
				node := menu.FindByTitle(tree.Items(), title)
				if node == nil {
					return mcptypes.NewToolResultError(fmt.Sprintf("no node found with title %q", title)), nil
				}
				node.DisableAll()
			}

			if err := loader.SaveFile(b.menuFile, tree); err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot save menu", err), nil
			}

			slog.Debug("disabled menu nodes", "file", b.menuFile, "url", url, "title", title, "all", all)
			return mcptypes.NewToolResultJSON(map[string]any{
				"active_remaining": menu.CountActive(tree.Items()),
			})
		},
	}
}
