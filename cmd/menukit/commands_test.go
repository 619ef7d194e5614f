package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/dfreire/menukit/pkg/loader"
	"github.com/dfreire/menukit/pkg/menu"
)

const testMenuDefinition = `{
  "title": "Loja Virtual",
  "items": [
    {"title": "Home", "url": "/", "icon": "🏠"},
    {
      "title": "Produtos",
      "children": [
        {"title": "Todos", "url": "/produtos"},
        {"title": "Ofertas", "url": "/produtos/ofertas"}
      ]
    }
  ]
}`

func writeTestMenu(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(testMenuDefinition), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	root := &cli.Command{
		Name:     "menukit",
		Commands: getCommands(),
	}
	return root.Run(context.Background(), append([]string{"menukit"}, args...))
}

func TestDisableCommand_PersistsChanges(t *testing.T) {
	path := writeTestMenu(t)

	err := runCommand(t, "disable", "--file", path, "--title", "Produtos")
	require.NoError(t, err)

	tree, err := loader.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, menu.CountActive(tree.Items()))
	assert.True(t, tree.FindByURL("/").Active())
	assert.False(t, tree.FindByURL("/produtos/ofertas").Active())
}

func TestDisableCommand_DryRunLeavesFileUntouched(t *testing.T) {
	path := writeTestMenu(t)

	err := runCommand(t, "disable", "--file", path, "--dry-run", "/produtos/ofertas")
	require.NoError(t, err)

	tree, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, menu.CountActive(tree.Items()))
}

func TestDisableCommand_RequiresExactlyOneSelector(t *testing.T) {
	path := writeTestMenu(t)

	err := runCommand(t, "disable", "--file", path)
	assert.Error(t, err)

	err = runCommand(t, "disable", "--file", path, "--all", "--title", "Produtos")
	assert.Error(t, err)
}

func TestFindCommand_UnknownURL(t *testing.T) {
	path := writeTestMenu(t)

	err := runCommand(t, "find", "--file", path, "/nao-existe")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no entry found")
}

func TestFindCommand_KnownURL(t *testing.T) {
	path := writeTestMenu(t)

	err := runCommand(t, "find", "--file", path, "/produtos/ofertas")
	assert.NoError(t, err)
}

func TestStatsCommand_ValidMenu(t *testing.T) {
	path := writeTestMenu(t)

	err := runCommand(t, "stats", "--file", path)
	assert.NoError(t, err)
}

func TestCountCommand_MissingFile(t *testing.T) {
	err := runCommand(t, "count", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
