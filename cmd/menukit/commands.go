package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dfreire/menukit/pkg/loader"
	"github.com/dfreire/menukit/pkg/mcp"
	"github.com/dfreire/menukit/pkg/menu"
	"github.com/dfreire/menukit/pkg/render"
	"github.com/dfreire/menukit/pkg/search"
	"github.com/urfave/cli/v3"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		getShowCommand(),
		getCountCommand(),
		getStatsCommand(),
		getFindCommand(),
		getSearchCommand(),
		getDisableCommand(),
		getMcpCommand(),
		getVersionCommand(),
	}
}

func getShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Render the menu tree",
		UsageText: "menukit show [options]",
		Flags: []cli.Flag{
			getFileFlag(),
			getFormatFlag(),
			&cli.BoolFlag{
				Name:  "include-inactive",
				Usage: "Include disabled entries in the output",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			tree, err := loadMenu(cmd)
			if err != nil {
				return err
			}

			renderer, ok := render.ForFormat(format, cmd.Bool("include-inactive"))
			if !ok {
				return fmt.Errorf("format must be 'text', 'markdown', or 'json'")
			}

			slog.Debug("rendering menu", "title", tree.Title(), "format", format)
			return renderer.RenderTree(os.Stdout, tree)
		},
	}
}

func getCountCommand() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "Count the entries in the menu",
		UsageText: "menukit count [options]",
		Flags: []cli.Flag{
			getFileFlag(),
			getFormatFlag(),
			&cli.BoolFlag{
				Name:  "active-only",
				Usage: "Count only entries that are still active",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			tree, err := loadMenu(cmd)
			if err != nil {
				return err
			}

			total := tree.TotalItems()
			active := menu.CountActive(tree.Items())

			count := total
			if cmd.Bool("active-only") {
				count = active
			}

			if format == "json" {
				printJSON(map[string]int{"total": total, "active": active})
			} else {
				fmt.Println(count)
			}
			return nil
		},
	}
}

type statsOutput struct {
	Title    string `json:"title"`
	Entries  int    `json:"entries"`
	Active   int    `json:"active"`
	Sections int    `json:"sections"`
	MaxDepth int    `json:"max_depth"`
}

func getStatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Summarize the shape of the menu",
		UsageText: "menukit stats [options]",
		Flags: []cli.Flag{
			getFileFlag(),
			getFormatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			tree, err := loadMenu(cmd)
			if err != nil {
				return err
			}

			sections := 0
			for _, n := range menu.Flatten(tree.Items()) {
				if n.URL() == "" {
					sections++
				}
			}

			stats := statsOutput{
				Title:    tree.Title(),
				Entries:  tree.TotalItems(),
				Active:   menu.CountActive(tree.Items()),
				Sections: sections,
				MaxDepth: menu.MaxDepth(tree.Items()),
			}

			if format == "json" {
				printJSON(stats)
			} else {
				fmt.Printf("%s\n", stats.Title)
				fmt.Printf("  entries:   %d\n", stats.Entries)
				fmt.Printf("  active:    %d\n", stats.Active)
				fmt.Printf("  sections:  %d\n", stats.Sections)
				fmt.Printf("  max depth: %d\n", stats.MaxDepth)
			}
			return nil
		},
	}
}

func getFindCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "Find the entry registered for a URL",
		UsageText: "menukit find <url> [options]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "url",
				UsageText: "<url>",
			},
		},
		Flags: []cli.Flag{
			getFileFlag(),
			getFormatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			url := cmd.StringArg("url")
			if url == "" {
				return fmt.Errorf("url is required")
			}

			tree, err := loadMenu(cmd)
			if err != nil {
				return err
			}

			node := tree.FindByURL(url)
			if node == nil {
				return fmt.Errorf("no entry found for url: %s", url)
			}

			if format == "json" {
				printJSON(map[string]interface{}{
					"title":  node.Title(),
					"url":    node.URL(),
					"icon":   node.Icon(),
					"active": node.Active(),
				})
			} else {
				fmt.Println(menu.Line(node))
			}
			return nil
		},
	}
}

func getSearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search menu entries by title",
		UsageText: "menukit search <pattern> [options]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "pattern",
				UsageText: "Search pattern (text or regex with -E)",
			},
		},
		Flags: getSearchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			pattern := cmd.StringArg("pattern")
			if pattern == "" {
				return fmt.Errorf("search pattern is required")
			}

			tree, err := loadMenu(cmd)
			if err != nil {
				return err
			}

			results := search.Search(
				tree.Items(),
				pattern,
				cmd.Bool("regexp"),
				cmd.Bool("ignore-case"),
			)

			printSearchResults(os.Stdout, results, format)
			return nil
		},
	}
}

type disableSummary struct {
	Target          string `json:"target"`
	Disabled        int    `json:"disabled"`
	ActiveRemaining int    `json:"active_remaining"`
	DryRun          bool   `json:"dry_run,omitempty"`
}

func getDisableCommand() *cli.Command {
	return &cli.Command{
		Name:      "disable",
		Usage:     "Disable an entry or a whole section",
		UsageText: "menukit disable [<url>] [options]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "url",
				UsageText: "[<url>] (or use --title or --all)",
			},
		},
		Flags: []cli.Flag{
			getFileFlag(),
			getFormatFlag(),
			&cli.StringFlag{
				Name:  "title",
				Usage: "Disable the first node with this title (sections included)",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Disable every node in the menu",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show what would be disabled without saving changes",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			url := cmd.StringArg("url")
			title := cmd.String("title")
			all := cmd.Bool("all")

			selectors := 0
			if url != "" {
				selectors++
			}
			if title != "" {
				selectors++
			}
			if all {
				selectors++
			}
			if selectors == 0 {
				return fmt.Errorf("must select a target via <url>, --title, or --all")
			}
			if selectors > 1 {
				return fmt.Errorf("cannot combine <url>, --title, and --all (choose one)")
			}

			tree, err := loadMenu(cmd)
			if err != nil {
				return err
			}

			activeBefore := menu.CountActive(tree.Items())

			var target string
			switch {
			case all:
				target = tree.Title()
				if !cmd.Bool("dry-run") {
					tree.DisableAll()
				}
			case url != "":
				node := tree.FindByURL(url)
				if node == nil {
					return fmt.Errorf("no entry found for url: %s", url)
				}
				target = node.Title()
				if !cmd.Bool("dry-run") {
					node.DisableAll()
				}
			default:
				node := menu.FindByTitle(tree.Items(), title)
				if node == nil {
					return fmt.Errorf("no node found with title: %s", title)
				}
				target = node.Title()
				if !cmd.Bool("dry-run") {
					node.DisableAll()
				}
			}

			if cmd.Bool("dry-run") {
				disabled := wouldDisable(tree, url, title, all)
				summary := disableSummary{
					Target:          target,
					Disabled:        disabled,
					ActiveRemaining: activeBefore - disabled,
					DryRun:          true,
				}
				if format == "json" {
					printJSON(summary)
				} else {
					fmt.Printf("Dry run: %d entries under %q would be disabled\n", disabled, target)
				}
				return nil
			}

			if err := loader.SaveFile(cmd.String("file"), tree); err != nil {
				return fmt.Errorf("cannot save menu: %w", err)
			}

			activeAfter := menu.CountActive(tree.Items())
			slog.Debug("disabled nodes", "target", target, "active_before", activeBefore, "active_after", activeAfter)

			summary := disableSummary{
				Target:          target,
				Disabled:        activeBefore - activeAfter,
				ActiveRemaining: activeAfter,
			}
			if format == "json" {
				printJSON(summary)
			} else {
				fmt.Printf("%q disabled (%d entries still active)\n", target, activeAfter)
			}
			return nil
		},
	}
}

// wouldDisable counts the active leaf entries a disable would touch, without
// mutating the tree.
func wouldDisable(tree *menu.Tree, url, title string, all bool) int {
	var root menu.Node
	switch {
	case all:
		return menu.CountActive(tree.Items())
	case url != "":
		root = tree.FindByURL(url)
	default:
		root = menu.FindByTitle(tree.Items(), title)
	}
	if root == nil {
		return 0
	}
	return menu.CountActive([]menu.Node{root})
}

func getMcpCommand() *cli.Command {
	return &cli.Command{
		Name:      "mcp",
		Usage:     "Run as MCP server (stdio transport)",
		UsageText: "menukit mcp [options]",
		Description: `Start the menukit MCP server for integration with AI assistants.

The server communicates via stdio using the Model Context Protocol (MCP).

Tool groups:
  read   Show, List, Count, Find, and Search tools (default)
  write  Disable tool
  all    All available tools

Examples:
  menukit mcp                        # Read-only tools (safe)
  menukit mcp --expose=all           # All tools including disable
  menukit mcp --expose=show,count    # Specific tools only`,
		Flags: []cli.Flag{
			getFileFlag(),
			&cli.StringFlag{
				Name:  "expose",
				Value: "read",
				Usage: "Tools to expose: read, write, all, or comma-separated tool names",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			serverConfig := mcp.Config{
				MenuFile: cmd.String("file"),
				Expose:   cmd.String("expose"),
				Version:  version,
			}
			return mcp.RunServer(ctx, serverConfig)
		},
	}
}

func getVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Show version information",
		UsageText: "menukit version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Print(buildVersion(version, commit, date, builtBy).String())
			return nil
		},
	}
}
