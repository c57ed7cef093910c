package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/styles"
)

// HelpOverlay renders the key reference as markdown
type HelpOverlay struct {
	text     *styles.TextFormatter
	markdown string
}

// NewHelpOverlay creates a help overlay for markdown
func NewHelpOverlay(text *styles.TextFormatter, markdown string) *HelpOverlay {
	return &HelpOverlay{text: text, markdown: markdown}
}

// SetMarkdown replaces the help source
func (h *HelpOverlay) SetMarkdown(markdown string) {
	h.markdown = markdown
}

// Markdown returns the help source
func (h *HelpOverlay) Markdown() string {
	return h.markdown
}

// View renders the help for a window painted bg. Rendering errors fall
// back to the raw markdown.
func (h *HelpOverlay) View(width int, bg color.Color) string {
	h.text.Resize(width)
	rendered, err := h.text.RenderMarkdown(h.markdown, bg)
	if err != nil {
		rendered = h.markdown
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Render(rendered)
}
