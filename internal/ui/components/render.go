package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/john/tinter/internal/ui/widget"
)

// ContentFunc renders the body of a leaf widget at the given inner size
type ContentFunc func(n *widget.Node, width, height int) string

// Renderer draws a widget tree with each node's own colors and border
type Renderer struct {
	content map[widget.Widget]ContentFunc
}

// NewRenderer creates a renderer with no bound content
func NewRenderer() *Renderer {
	return &Renderer{content: make(map[widget.Widget]ContentFunc)}
}

// Bind makes fn produce the content of w instead of its Content field
func (r *Renderer) Bind(w widget.Widget, fn ContentFunc) {
	r.content[w] = fn
}

// Render draws root into a block width cells wide
func (r *Renderer) Render(root *widget.Node, width int) string {
	if root == nil || width <= 0 {
		return ""
	}
	return r.render(root, width)
}

func (r *Renderer) render(n *widget.Node, width int) string {
	style := n.Style()
	if _, ok := n.StyleProperty(SelectedProperty); ok {
		style = style.Reverse(true)
	}
	if n.Kind == widget.KindButton {
		style = style.Padding(0, 1)
	}

	frameW := style.GetHorizontalFrameSize()
	innerW := width - frameW
	if innerW < 1 {
		innerW = 1
	}

	innerH := 0
	if n.Height > 0 {
		innerH = n.Height - style.GetVerticalFrameSize()
		if innerH < 1 {
			innerH = 1
		}
	}

	body := r.body(n, innerW, innerH)
	if innerH > 0 {
		if lines := strings.Split(body, "\n"); len(lines) > innerH {
			body = strings.Join(lines[:innerH], "\n")
		}
	}

	if n.Kind == widget.KindButton {
		// Buttons size to their label
		return style.Render(truncateLines(body, innerW))
	}

	style = style.Width(width - style.GetHorizontalBorderSize())
	if innerH > 0 {
		style = style.Height(innerH + style.GetVerticalPadding())
	}
	return style.Render(truncateLines(body, innerW))
}

func (r *Renderer) body(n *widget.Node, width, height int) string {
	if fn, ok := r.content[n]; ok {
		return fn(n, width, height)
	}

	var parts []string
	for _, child := range n.Children() {
		cn, ok := child.(*widget.Node)
		if !ok {
			continue
		}
		parts = append(parts, r.render(cn, width))
	}

	if len(parts) == 0 {
		return n.Content
	}

	if n.Layout == widget.LayoutHorizontal {
		gap := lipgloss.NewStyle().Background(n.Background().Lipgloss()).Render(" ")
		joined := make([]string, 0, len(parts)*2)
		for i, p := range parts {
			if i > 0 {
				joined = append(joined, gap)
			}
			joined = append(joined, p)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, joined...)
		if n.Content != "" {
			row = n.Content + " " + row
		}
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// truncateLines cuts every line of s to width cells, keeping ANSI styling
func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
