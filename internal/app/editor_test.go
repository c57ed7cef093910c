package app

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/john/tinter/internal/ui/widget"
)

func TestEditorTree_Structure(t *testing.T) {
	toolbar := widget.NewNode("toolbar", widget.KindToolbar)
	tree := NewEditorTree(toolbar)

	assert.Same(t, tree.CodeScroll, widget.ParentOf(tree.Window, tree.Code))
	assert.Same(t, tree.ConsoleScroll, widget.ParentOf(tree.Window, tree.Console))
	assert.True(t, widget.IsViewport(tree.ConsoleScroll))
	assert.True(t, widget.Contains(tree.Window, toolbar))
	assert.Equal(t, "widget.ErrorTable", tree.Errors.TypeName())
}

func TestEditorTree_Layout(t *testing.T) {
	tree := NewEditorTree(widget.NewNode("toolbar", widget.KindToolbar))

	tree.Layout(40)
	// 40 rows less header, toolbar, errors, status and toast
	assert.Equal(t, 20, tree.Code.Height)
	assert.Equal(t, 14, tree.Console.Height)

	tree.Layout(0)
	assert.Equal(t, minPaneRows, tree.Code.Height)
	assert.Equal(t, minPaneRows, tree.Console.Height)
}

func TestEditorTree_LayoutCountsBorders(t *testing.T) {
	toolbar := widget.NewNode("toolbar", widget.KindToolbar)
	tree := NewEditorTree(toolbar)
	rounded := lipgloss.RoundedBorder()

	button := widget.NewNode("button.run", widget.KindButton)
	button.SetBorder(&rounded)
	toolbar.Add(button)
	tree.CodeScroll.SetBorder(&rounded)
	tree.ConsoleScroll.SetBorder(&rounded)

	tree.Layout(40)
	// two extra toolbar rows and two frames of two rows each
	assert.Equal(t, 16, tree.Code.Height)
	assert.Equal(t, 12, tree.Console.Height)
}
