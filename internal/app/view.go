package app

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the current state
func (m *Model) View() string {
	if !m.ready {
		return "Starting tinter..."
	}

	switch m.GetCurrentState() {
	case StateHelp:
		return m.help.View(m.width, m.tree.Window.Background())
	case StatePickingZone, StatePickingColor:
		return m.renderPicker()
	case StateShutdown:
		return ""
	}

	editor := m.renderer.Render(m.tree.Window, m.width)
	if !m.toast.Visible() {
		return editor
	}
	return lipgloss.JoinVertical(lipgloss.Left, editor, m.toast.View())
}

// Render draws the editor window at a fixed size without the event loop
func (m *Model) Render(width, height int) string {
	m.setSize(width, height)
	return m.renderer.Render(m.tree.Window, width)
}

// renderPicker centers the picker forms over the window
func (m *Model) renderPicker() string {
	if m.pickerFlow == nil {
		return ""
	}

	palette := m.themes.GetCurrentTheme().Colors
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Border.Lipgloss()).
		Padding(1, 2).
		Render(m.pickerFlow.View())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
