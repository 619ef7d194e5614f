package main

import (
	"fmt"

	"github.com/dfreire/menukit/pkg/loader"
	"github.com/dfreire/menukit/pkg/menu"
	"github.com/urfave/cli/v3"
)

func getFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Value:   "menu.json",
		Sources: cli.EnvVars("MENUKIT_FILE"),
		Usage:   "Path to the menu definition file (env: MENUKIT_FILE)",
	}
}

func getFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: "text",
		Usage: "Output format: text, markdown or json",
	}
}

func validateFormat(format string) error {
	if format != "text" && format != "markdown" && format != "json" {
		return fmt.Errorf("format must be 'text', 'markdown', or 'json'")
	}
	return nil
}

func getIgnoreCaseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "ignore-case",
		Aliases: []string{"i"},
		Usage:   "Case-insensitive matching",
	}
}

func getRegexpFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "regexp",
		Aliases: []string{"E"},
		Usage:   "Treat pattern as regular expression",
	}
}

func getSearchFlags() []cli.Flag {
	return []cli.Flag{
		getFileFlag(),
		getFormatFlag(),
		getIgnoreCaseFlag(),
		getRegexpFlag(),
	}
}

func loadMenu(cmd *cli.Command) (*menu.Tree, error) {
	path := cmd.String("file")
	tree, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load menu: %w", err)
	}
	return tree, nil
}
