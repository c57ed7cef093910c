package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/john/tinter/internal/ui/widget"
)

const defaultConsoleLines = 500

// ConsolePane is the scrolling sketch output shown in the console zone
type ConsolePane struct {
	viewport viewport.Model
	lines    []string
	maxLines int
	follow   bool
}

// NewConsolePane creates a new console that keeps the newest lines in view
func NewConsolePane(width, height int) *ConsolePane {
	vp := viewport.New(width, height)
	return &ConsolePane{
		viewport: vp,
		maxLines: defaultConsoleLines,
		follow:   true,
	}
}

// SetSize resizes the viewport
func (cp *ConsolePane) SetSize(width, height int) {
	cp.viewport.Width = width
	cp.viewport.Height = height
	if cp.follow {
		cp.viewport.GotoBottom()
	}
}

// Append adds a line of output
func (cp *ConsolePane) Append(line string) {
	cp.lines = append(cp.lines, strings.Split(line, "\n")...)
	if over := len(cp.lines) - cp.maxLines; over > 0 {
		cp.lines = cp.lines[over:]
	}
	cp.viewport.SetContent(strings.Join(cp.lines, "\n"))
	if cp.follow {
		cp.viewport.GotoBottom()
	}
}

// Printf appends a formatted line
func (cp *ConsolePane) Printf(format string, args ...any) {
	cp.Append(fmt.Sprintf(format, args...))
}

// Lines returns the buffered output
func (cp *ConsolePane) Lines() []string {
	return cp.lines
}

// Clear drops all output
func (cp *ConsolePane) Clear() {
	cp.lines = nil
	cp.viewport.SetContent("")
	cp.follow = true
}

// Scroll handles a navigation key and reports whether it was used
func (cp *ConsolePane) Scroll(key string) bool {
	switch key {
	case "up":
		cp.viewport.ScrollUp(1)
	case "down":
		cp.viewport.ScrollDown(1)
	case "pgup":
		cp.viewport.PageUp()
	case "pgdown":
		cp.viewport.PageDown()
	case "home":
		cp.viewport.GotoTop()
	case "end":
		cp.viewport.GotoBottom()
	default:
		return false
	}
	cp.follow = cp.viewport.AtBottom()
	return true
}

// Following reports whether new output scrolls into view
func (cp *ConsolePane) Following() bool {
	return cp.follow
}

// SyncStyle paints the viewport with the console widget's colors
func (cp *ConsolePane) SyncStyle(w widget.Widget) {
	style := lipgloss.NewStyle().Foreground(w.Foreground().Lipgloss())
	if w.Opaque() {
		style = style.Background(w.Background().Lipgloss())
	}
	cp.viewport.Style = style
}

// View renders the viewport
func (cp *ConsolePane) View() string {
	return cp.viewport.View()
}

// Render is a ContentFunc for the console widget
func (cp *ConsolePane) Render(n *widget.Node, width, height int) string {
	if height <= 0 {
		height = 5
	}
	if cp.viewport.Width != width || cp.viewport.Height != height {
		cp.SetSize(width, height)
	}
	cp.SyncStyle(n)
	return cp.View()
}
