package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfreire/menukit/pkg/loader"
	"github.com/dfreire/menukit/pkg/menu"
)

func buildFixture(t *testing.T) *menu.Tree {
	t.Helper()

	todos, err := menu.NewEntry("Todos", "/produtos")
	require.NoError(t, err)
	ofertas, err := menu.NewEntry("Ofertas", "/ofertas", menu.WithDisabled())
	require.NoError(t, err)

	produtos, err := menu.NewGroup("Produtos", menu.WithIcon("📦"))
	require.NoError(t, err)
	require.NoError(t, produtos.AddChild(todos))
	require.NoError(t, produtos.AddChild(ofertas))

	home, err := menu.NewEntry("Home", "/")
	require.NoError(t, err)

	tree := menu.NewTree("Loja Virtual")
	require.NoError(t, tree.AddItem(home))
	require.NoError(t, tree.AddItem(produtos))
	return tree
}

func Test_Text(t *testing.T) {
	tree := buildFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Text{Banner: true, IncludeInactive: true}.RenderTree(&buf, tree))

	expected := `===== Loja Virtual =====
- [*] Home (/)
- [*] 📦 Produtos
  - [*] Todos (/produtos)
  - [ ] Ofertas (/ofertas)
`
	assert.Equal(t, expected, buf.String())
}

func Test_Text_PrunesInactive(t *testing.T) {
	tree := buildFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Text{}.RenderTree(&buf, tree))

	assert.NotContains(t, buf.String(), "Ofertas")
	assert.Contains(t, buf.String(), "Todos")
	assert.NotContains(t, buf.String(), "=====")
}

func Test_Text_PrunesWholeSubtree(t *testing.T) {
	tree := buildFixture(t)
	menu.FindByTitle(tree.Items(), "Produtos").DisableAll()

	var buf bytes.Buffer
	require.NoError(t, Text{Banner: true}.RenderTree(&buf, tree))

	expected := `===== Loja Virtual =====
- [*] Home (/)
`
	assert.Equal(t, expected, buf.String())
}

func Test_Markdown(t *testing.T) {
	tree := buildFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Markdown{IncludeInactive: true}.RenderTree(&buf, tree))

	expected := `# Loja Virtual

- [Home](/)
- Produtos
  - [Todos](/produtos)
  - [Ofertas](/ofertas) ~disabled~
`
	assert.Equal(t, expected, buf.String())
}

func Test_Markdown_PrunesInactive(t *testing.T) {
	tree := buildFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Markdown{}.RenderTree(&buf, tree))

	assert.NotContains(t, buf.String(), "Ofertas")
	assert.NotContains(t, buf.String(), "~disabled~")
}

func Test_JSON_RoundTrips(t *testing.T) {
	tree := buildFixture(t)

	var buf bytes.Buffer
	require.NoError(t, JSON{}.RenderTree(&buf, tree))
	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	reloaded, err := loader.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, tree.TotalItems(), reloaded.TotalItems())
}

func Test_ForFormat(t *testing.T) {
	for _, format := range []string{"text", "markdown", "json"} {
		r, ok := ForFormat(format, true)
		assert.True(t, ok, format)
		assert.NotNil(t, r)
	}

	_, ok := ForFormat("yaml", true)
	assert.False(t, ok)
}
