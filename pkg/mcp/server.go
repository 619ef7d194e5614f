package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Config controls MCP server startup.
type Config struct {
	MenuFile string
	Expose   string
	Version  string
}

// RunServer starts the MCP stdio server with the requested tool set.
func RunServer(ctx context.Context, cfg Config) error {
	expose := strings.TrimSpace(cfg.Expose)
	if expose == "" {
		expose = "read"
	}

	toolsToEnable, err := ParseExposeList(expose)
	if err != nil {
		return err
	}

	builder := NewToolBuilder(cfg.MenuFile)
	serverTools, err := builder.BuildTools(toolsToEnable)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"menukit",
		cfg.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	for _, tool := range serverTools {
		server.AddTool(tool.Tool, tool.Handler)
	}

	return mcpserver.ServeStdio(server, mcpserver.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

// ParseExposeList converts the --expose flag into a deduplicated, ordered tool
// list. Supports groups: all, read, write. Individual tools can be referenced
// either by their short name (e.g., "show") or full MCP name (e.g.,
// "menu_show").
func ParseExposeList(raw string) ([]string, error) {
	tokenList := strings.Split(raw, ",")

	var tokens []string
	for _, t := range tokenList {
		token := strings.TrimSpace(strings.ToLower(t))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		tokens = []string{"read"}
	}

	result := make([]string, 0, len(allTools))
	seen := make(map[string]struct{})

	addSet := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}

	for _, token := range tokens {
		if group, ok := groupMap[token]; ok {
			addSet(group)
			continue
		}

		if alias, ok := aliasMap[token]; ok {
			addSet([]string{alias})
			continue
		}

		if _, ok := fullNames[token]; ok {
			addSet([]string{token})
			continue
		}

		return nil, fmt.Errorf("unknown tool or group in --expose: %s", token)
	}

	return result, nil
}

var (
	allTools = []string{
		ToolShow,
		ToolList,
		ToolCount,
		ToolFind,
		ToolSearch,
		ToolDisable,
	}

	readTools = []string{
		ToolShow,
		ToolList,
		ToolCount,
		ToolFind,
		ToolSearch,
	}

	writeTools = []string{
		ToolDisable,
	}

	groupMap = map[string][]string{
		"all":   allTools,
		"read":  readTools,
		"write": writeTools,
	}

	aliasMap = map[string]string{
		"show":    ToolShow,
		"list":    ToolList,
		"count":   ToolCount,
		"find":    ToolFind,
		"search":  ToolSearch,
		"disable": ToolDisable,
	}

	fullNames = func() map[string]struct{} {
		out := make(map[string]struct{}, len(allTools))
		for _, fullName := range allTools {
			out[fullName] = struct{}{}
		}
		return out
	}()
)
