package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/john/tinter/internal/ui/components"
	"github.com/john/tinter/internal/ui/styles"
)

const maxFormWidth = 60

// Update handles all incoming messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		m.ready = true

	case components.ToastTickMsg:
		cmds = append(cmds, m.toast.Update(msg))

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	default:
		// huh drives its fields with its own messages
		if m.stateManager.Picking() {
			cmds = append(cmds, m.updatePicker(msg))
		}
	}

	cmds = append(cmds, m.drainPending())
	return m, tea.Batch(cmds...)
}

// handleKey dispatches a key press for the current state
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	switch m.GetCurrentState() {
	case StatePickingZone, StatePickingColor:
		return m.updatePicker(msg)
	case StateHelp:
		switch key {
		case "?", "esc", "q":
			m.stateManager.Back()
		}
		return nil
	case StateShutdown:
		return nil
	}

	b, ok := m.keys.Lookup(key)
	if !ok {
		return nil
	}
	if b.Handler == nil {
		// Unhandled bindings are console navigation
		m.console.Scroll(key)
		return nil
	}
	return b.Handler(m)
}

// pressButton presses a toolbar button
func (m *Model) pressButton(id components.ButtonID, mods components.Modifiers) tea.Cmd {
	if !m.toolbar.Press(id, mods) {
		return m.toast.Show(fmt.Sprintf("%s is only available while debugging", m.toolbar.Hint(id, mods)), components.NotificationInfo)
	}

	if id == components.ButtonDebug {
		// The rebuilt buttons carry no override yet
		m.restorePreferences()
	}
	return m.drainPending()
}

// openPicker starts the embedded zone and color dialogs
func (m *Model) openPicker() tea.Cmd {
	if !m.TransitionTo(StatePickingZone) {
		return nil
	}

	width := min(m.width-8, maxFormWidth)
	if width < 0 {
		width = 0
	}
	m.pickerFlow = components.NewPickerFlow(m.picker.Initial, width)
	return m.pickerFlow.Init()
}

// updatePicker forwards msg to the picker and applies its outcome
func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	if m.pickerFlow == nil {
		return nil
	}

	flow := m.pickerFlow
	cmd := flow.Update(msg)

	switch flow.Stage() {
	case components.PickerColor:
		if m.GetCurrentState() == StatePickingZone {
			m.TransitionTo(StatePickingColor)
		}
		return cmd

	case components.PickerDone:
		m.closePicker()
		c, err := flow.Color()
		if err != nil {
			return m.errorHandler.HandleError(err)
		}
		return m.applyZoneColor(flow.Zone(), c)

	case components.PickerCancelled:
		m.closePicker()
		m.logger.Debug("Theme picker dismissed")
		return nil
	}
	return cmd
}

func (m *Model) closePicker() {
	m.pickerFlow = nil
	m.TransitionTo(StateEditing)
}

// cycleTheme switches to the next base theme and keeps the overrides
func (m *Model) cycleTheme() tea.Cmd {
	names := m.themes.ThemeNames()
	if len(names) == 0 {
		return nil
	}

	current := m.themes.GetCurrentTheme().Name
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}

	if err := m.themes.SetTheme(next); err != nil {
		return m.errorHandler.HandleError(err)
	}

	theme := m.themes.GetCurrentTheme()
	m.toast.SetPalette(theme.Colors)
	m.statusBar.SetTheme(theme.Name)
	m.RebuildHeader()
	m.ReapplyPreferences()
	m.storage.Config.Theme = theme.Name
	m.logger.Info("Theme changed", "theme", theme.Name)

	if err := m.storage.ConfigManager.UpdateTheme(theme.Name); err != nil {
		return m.errorHandler.HandleError(
			NewAppError(ErrorTypeConfig, "failed to save theme", err).
				WithContext("theme", theme.Name).
				WithUserMessage(fmt.Sprintf("Switched to %s but could not save it", theme.DisplayName)).
				MakeRecoverable(),
		)
	}
	return m.toast.Show("Theme: "+theme.DisplayName, components.NotificationInfo)
}

// resetZones drops every override and its saved preference
func (m *Model) resetZones() tea.Cmd {
	cleared := styles.ClearLocks(m.tree.Window)
	for _, key := range m.zoneKeys() {
		m.storage.Preferences.Delete(key)
	}
	m.ReapplyPreferences()
	m.RebuildHeader()
	m.lastHex = ""

	if err := m.storage.Preferences.Save(); err != nil {
		return m.errorHandler.HandleError(
			NewAppError(ErrorTypeStorage, "failed to save preferences", err).
				WithUserMessage("Colors reset for this session but not saved").
				MakeRecoverable(),
		)
	}

	m.logger.Info("Zone colors reset", "cleared", cleared)
	return m.toast.Show("Zone colors reset to the base theme", components.NotificationSuccess)
}

// copyLastColor puts the last applied hex on the clipboard
func (m *Model) copyLastColor() tea.Cmd {
	if m.lastHex == "" {
		return m.toast.Show("No color applied yet", components.NotificationInfo)
	}

	if err := m.copy(m.lastHex); err != nil {
		return m.errorHandler.HandleError(
			NewAppError(ErrorTypeClipboard, "failed to copy color", err).
				WithContext("hex", m.lastHex).
				WithUserMessage("Clipboard is not available").
				MakeRecoverable(),
		)
	}
	return m.toast.Show("Copied "+m.lastHex, components.NotificationSuccess)
}

func (m *Model) refreshLookAndFeel() tea.Cmd {
	m.ReapplyPreferences()
	return m.toast.Show("Look and feel refreshed", components.NotificationInfo)
}

func (m *Model) openHelp() tea.Cmd {
	m.help.SetMarkdown(m.keys.HelpMarkdown())
	m.TransitionTo(StateHelp)
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.TransitionTo(StateShutdown)
	m.logger.Info("Shutting down")
	return tea.Quit
}
