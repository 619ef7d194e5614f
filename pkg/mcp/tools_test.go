package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfreire/menukit/pkg/loader"
)

const testDefinition = `{
  "title": "Loja Virtual",
  "items": [
    {"title": "Home", "url": "/"},
    {
      "title": "Produtos",
      "children": [
        {"title": "Todos", "url": "/produtos"},
        {"title": "Ofertas", "url": "/ofertas"}
      ]
    }
  ]
}`

func writeTestMenu(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(testDefinition), 0644))
	return path
}

func callTool(t *testing.T, builder ToolBuilder, name string, args map[string]any) *mcptypes.CallToolResult {
	t.Helper()

	tools, err := builder.BuildTools([]string{name})
	require.NoError(t, err)
	require.Len(t, tools, 1)

	req := mcptypes.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := tools[0].Handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcptypes.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcptypes.AsTextContent(result.Content[0])
	require.True(t, ok)
	return text.Text
}

func resultJSON(t *testing.T, result *mcptypes.CallToolResult) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	return payload
}

func Test_ShowTool(t *testing.T) {
	builder := NewToolBuilder(writeTestMenu(t))

	result := callTool(t, builder, ToolShow, map[string]any{})
	assert.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "===== Loja Virtual =====")
	assert.Contains(t, text, "- [*] Home (/)")
	assert.Contains(t, text, "  - [*] Ofertas (/ofertas)")
}

func Test_ShowTool_InvalidFormat(t *testing.T) {
	builder := NewToolBuilder(writeTestMenu(t))

	result := callTool(t, builder, ToolShow, map[string]any{"format": "yaml"})
	assert.True(t, result.IsError)
}

func Test_ListTool(t *testing.T) {
	builder := NewToolBuilder(writeTestMenu(t))

	payload := resultJSON(t, callTool(t, builder, ToolList, map[string]any{}))
	items, ok := payload["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 4)
}

func Test_CountTool(t *testing.T) {
	builder := NewToolBuilder(writeTestMenu(t))

	payload := resultJSON(t, callTool(t, builder, ToolCount, map[string]any{}))
	assert.Equal(t, float64(3), payload["total"])
	assert.Equal(t, float64(3), payload["active"])
}

func Test_FindTool(t *testing.T) {
	builder := NewToolBuilder(writeTestMenu(t))

	payload := resultJSON(t, callTool(t, builder, ToolFind, map[string]any{"url": "/produtos"}))
	assert.Equal(t, true, payload["found"])

	entry, ok := payload["entry"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Todos", entry["title"])

	payload = resultJSON(t, callTool(t, builder, ToolFind, map[string]any{"url": "/nao-existe"}))
	assert.Equal(t, false, payload["found"])
}

func Test_SearchTool(t *testing.T) {
	builder := NewToolBuilder(writeTestMenu(t))

	payload := resultJSON(t, callTool(t, builder, ToolSearch, map[string]any{
		"pattern":     "produtos",
		"ignore_case": true,
	}))
	results, ok := payload["results"].([]any)
	require.True(t, ok)
	assert.Len(t, results, 2)
}

func Test_DisableTool(t *testing.T) {
	path := writeTestMenu(t)
	builder := NewToolBuilder(path)

	payload := resultJSON(t, callTool(t, builder, ToolDisable, map[string]any{"title": "Produtos"}))
	assert.Equal(t, float64(1), payload["active_remaining"])

	// The definition file was rewritten with the new state.
	tree, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.False(t, tree.FindByURL("/ofertas").Active())
	assert.True(t, tree.FindByURL("/").Active())
}

func Test_DisableTool_RequiresOneSelector(t *testing.T) {
	builder := NewToolBuilder(writeTestMenu(t))

	result := callTool(t, builder, ToolDisable, map[string]any{})
	assert.True(t, result.IsError)

	result = callTool(t, builder, ToolDisable, map[string]any{"url": "/", "all": true})
	assert.True(t, result.IsError)
}

func Test_Tools_MissingMenuFile(t *testing.T) {
	builder := NewToolBuilder(filepath.Join(t.TempDir(), "nope.json"))

	result := callTool(t, builder, ToolCount, map[string]any{})
	assert.True(t, result.IsError)
}
