package app

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/john/tinter/internal/recolor"
	"github.com/john/tinter/internal/storage"
	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/components"
	"github.com/john/tinter/internal/ui/styles"
	"github.com/john/tinter/internal/ui/widget"
)

const maxRepaintLog = 32

// Options configures a Model
type Options struct {
	Storage *storage.Storage
	Logger  *log.Logger

	// Clipboard receives copied colors; defaults to the system clipboard
	Clipboard func(string) error

	// SketchName and Sketch fill the code surface; defaults to the bundled sketch
	SketchName string
	Sketch     string
}

// Model represents the main application state. It is the host editor the
// recolor package paints.
type Model struct {
	stateManager *StateManager
	keys         *KeyRegistry
	errorHandler *ErrorHandler

	// Window dimensions and layout
	width  int
	height int
	ready  bool

	// Dependencies
	storage *storage.Storage
	logger  *log.Logger
	copy    func(string) error

	// Look and feel
	themes      *styles.ThemeManager
	lookAndFeel *styles.LookAndFeel
	text        *styles.TextFormatter

	// Widgets
	tree       *EditorTree
	toolbar    *components.Toolbar
	renderer   *components.Renderer
	code       *components.CodeView
	console    *components.ConsolePane
	statusBar  *components.StatusBar
	toast      *components.Toast
	help       *components.HelpOverlay
	pickerFlow *components.PickerFlow

	picker *recolor.Picker

	sketchName    string
	armed         bool
	running       bool
	lastHex       string
	headerBuilds  int
	repaints      []string
	revalidations int

	// Commands queued outside Update, e.g. by notifications
	pending []tea.Cmd
}

// New creates a new application model and restores saved zone colors
func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	cfg := opts.Storage.Config
	sketchName, sketch := loadSketch(opts, cfg, logger)

	m := &Model{
		stateManager: NewStateManager(),
		keys:         NewKeyRegistry(),
		storage:      opts.Storage,
		logger:       logger,
		copy:         copyFn,
		themes:       styles.NewThemeManager(),
		text:         styles.NewTextFormatter(80),
		renderer:     components.NewRenderer(),
		console:      components.NewConsolePane(80, minPaneRows),
		sketchName:   sketchName,
		armed:        cfg.DebuggerArmed,
	}

	if cfg.Theme != "" && cfg.Theme != "auto" {
		if err := m.themes.SetTheme(cfg.Theme); err != nil {
			logger.Warn("Unknown theme in config, using default", "theme", cfg.Theme, "error", err)
		}
	}
	theme := m.themes.GetCurrentTheme()

	m.lookAndFeel = styles.NewLookAndFeel(m.themes)
	m.code = components.NewCodeView(sketch, cfg.CodeLanguage, m.text)
	m.statusBar = components.NewStatusBar(theme.Name)
	m.statusBar.SetDebuggerArmed(m.armed)
	m.toast = components.NewToast(theme.Colors, cfg.EnableAnimations)
	m.errorHandler = NewErrorHandler(logger, m.toast)
	m.help = components.NewHelpOverlay(m.text, m.keys.HelpMarkdown())

	m.toolbar = components.NewToolbar(m, debuggerConsole{m}, m.onThemeButton)
	m.tree = NewEditorTree(m.toolbar.Node())

	m.renderer.Bind(m.tree.Code, m.code.Render)
	m.renderer.Bind(m.tree.Console, m.console.Render)
	m.renderer.Bind(m.tree.Status, m.statusBar.Render)

	m.picker = recolor.NewPicker(m, opts.Storage.Preferences, m, logger)

	m.RebuildHeader()
	m.restorePreferences()
	return m
}

// GetCurrentState returns the current application state
func (m *Model) GetCurrentState() AppState {
	return m.stateManager.Current()
}

// TransitionTo attempts to transition to a new state
func (m *Model) TransitionTo(newState AppState) bool {
	if !m.stateManager.Transition(newState) {
		m.logger.Warn("Invalid state transition attempted", "from", m.stateManager.Current(), "to", newState)
		return false
	}
	m.logger.Debug("State transition", "from", m.stateManager.Previous(), "to", newState)
	return true
}

// Tree returns the editor widget tree
func (m *Model) Tree() *EditorTree {
	return m.tree
}

// Picker returns the zone picker bound to this editor
func (m *Model) Picker() *recolor.Picker {
	return m.picker
}

// CodeSurface implements recolor.Host
func (m *Model) CodeSurface() widget.Widget {
	return m.tree.Code
}

// ConsoleSurface implements recolor.Host
func (m *Model) ConsoleSurface() widget.Widget {
	return m.tree.Console
}

// WindowRoot implements recolor.Host
func (m *Model) WindowRoot() widget.Widget {
	return m.tree.Window
}

// ReapplyPreferences implements recolor.Host by refreshing the look and
// feel over the whole window. Locked widgets keep their override.
func (m *Model) ReapplyPreferences() {
	stats := m.lookAndFeel.Refresh(m.tree.Window)
	m.console.SyncStyle(m.tree.Console)
	m.tree.Layout(m.height)
	m.logger.Debug("Look and feel refreshed", "themed", stats.Themed, "preserved", stats.Preserved)
}

// RebuildHeader implements recolor.Host
func (m *Model) RebuildHeader() {
	m.headerBuilds++
	m.tree.Header.Content = fmt.Sprintf(" %s  ·  %s", m.sketchName, m.themes.GetCurrentTheme().DisplayName)
}

// Revalidate implements recolor.Host
func (m *Model) Revalidate(w widget.Widget) {
	m.revalidations++
	m.tree.Layout(m.height)
}

// Repaint implements recolor.Host. Every frame is redrawn from the tree,
// so the request is only recorded.
func (m *Model) Repaint(w widget.Widget) {
	name := w.TypeName()
	if n, ok := w.(*widget.Node); ok {
		name = n.Name
	}
	m.repaints = append(m.repaints, name)
	if len(m.repaints) > maxRepaintLog {
		m.repaints = m.repaints[len(m.repaints)-maxRepaintLog:]
	}
}

// Notify implements recolor.Notifier
func (m *Model) Notify(message string) {
	m.pending = append(m.pending, m.toast.Show(message, components.NotificationWarning))
}

// HandleRun implements components.Runner
func (m *Model) HandleRun() {
	m.running = true
	if m.armed {
		m.console.Printf("Debugging %s, paused at line 1", m.sketchName)
		m.toolbar.ActivateStep()
		m.toolbar.ActivateContinue()
		return
	}
	m.console.Printf("Running %s", m.sketchName)
}

// HandlePresent implements components.Runner
func (m *Model) HandlePresent() {
	m.running = true
	m.console.Printf("Presenting %s", m.sketchName)
}

// HandleStop implements components.Runner
func (m *Model) HandleStop() {
	if !m.running {
		m.console.Printf("Nothing to stop")
		return
	}
	m.running = false
	m.toolbar.DeactivateStep()
	m.toolbar.DeactivateContinue()
	m.console.Printf("Stopped %s", m.sketchName)
}

// ToggleDebug implements components.Runner
func (m *Model) ToggleDebug() {
	m.armed = !m.armed
	m.statusBar.SetDebuggerArmed(m.armed)
	m.storage.Config.DebuggerArmed = m.armed
	if err := m.storage.ConfigManager.UpdateDebuggerArmed(m.armed); err != nil {
		m.logger.Warn("Failed to persist debugger state", "error", err)
	}

	state := "disarmed"
	if m.armed {
		state = "armed"
	}
	m.console.Printf("Debugger %s", state)
	m.logger.Info("Debugger toggled", "armed", m.armed)
}

// DebuggerEnabled implements components.Runner
func (m *Model) DebuggerEnabled() bool {
	return m.armed
}

// debuggerConsole reports debugger actions in the console
type debuggerConsole struct {
	m *Model
}

func (d debuggerConsole) StepOver() { d.m.console.Printf("Step over") }
func (d debuggerConsole) StepInto() { d.m.console.Printf("Step into") }
func (d debuggerConsole) StepOut()  { d.m.console.Printf("Step out") }

func (d debuggerConsole) Continue() {
	d.m.toolbar.DeactivateStep()
	d.m.console.Printf("Continuing %s", d.m.sketchName)
}

// Apply applies c to zone the way the picker does and records the change
func (m *Model) Apply(zone recolor.Zone, c color.Color) recolor.Result {
	result := m.picker.Apply(zone, c)
	m.record(result)
	return result
}

// RunPicker runs the zone and color dialogs of d outside the event loop
func (m *Model) RunPicker(d recolor.Dialog) (recolor.Result, bool) {
	result, ok := m.picker.Run(d)
	if ok {
		m.record(result)
	}
	return result, ok
}

func (m *Model) record(result recolor.Result) {
	m.statusBar.RecordResult(result)
	m.storage.RecordChange(result.Zone.Short(), result.Background.Hex(), result.Foreground.Hex(), result.Saved())
	m.lastHex = result.Background.Hex()

	if result.Zone == recolor.ZoneOuter {
		m.keepConsoleViewport()
	}
}

// keepConsoleViewport puts the saved console color back on the console's
// viewport after an outer recolor painted over it, so the viewport matches
// what restorePreferences produces
func (m *Model) keepConsoleViewport() {
	hex, ok := m.storage.Preferences.Get(recolor.KeyConsoleColor)
	if !ok {
		return
	}
	c, err := color.ParseHex(hex)
	if err != nil {
		return
	}

	viewport := m.picker.Resolver().Resolve(recolor.ZoneConsole).Viewport
	if viewport == nil {
		return
	}
	viewport.PutStyleProperty(widget.StyleLockKey, "")
	recolor.PaintViewport(viewport, c)
	viewport.SetForeground(color.ContrastForeground(c))
}

// applyZoneColor applies a picked color from inside the event loop
func (m *Model) applyZoneColor(zone recolor.Zone, c color.Color) tea.Cmd {
	result := m.Apply(zone, c)
	if !result.Saved() {
		// The notifier has already queued the warning
		return nil
	}
	return m.toast.Show(fmt.Sprintf("%s set to %s", zone, c.Hex()), components.NotificationSuccess)
}

// restorePreferences repaints every zone that has a saved color, without
// saving again, then refreshes the look and feel
func (m *Model) restorePreferences() {
	prefs := m.storage.Preferences
	resolver := m.picker.Resolver()

	for _, zone := range recolor.Zones() {
		key := resolver.Resolve(zone).BackgroundKey
		hex, ok := prefs.Get(key)
		if !ok {
			continue
		}

		c, err := color.ParseHex(hex)
		if err != nil {
			m.logger.Warn("Ignoring invalid saved color", "key", key, "value", hex, "error", err)
			continue
		}

		stats := m.picker.Restore(zone, c)
		m.logger.Debug("Restored zone color", "zone", zone.Short(), "hex", c.Hex(), "painted", stats.Painted)
	}
	m.keepConsoleViewport()

	m.ReapplyPreferences()
}

// zoneKeys returns every preference key owned by a zone
func (m *Model) zoneKeys() []string {
	var keys []string
	for _, zone := range recolor.Zones() {
		desc := m.picker.Resolver().Resolve(zone)
		keys = append(keys, desc.BackgroundKey)
		if desc.ForegroundKey != "" {
			keys = append(keys, desc.ForegroundKey)
		}
	}
	return keys
}

// onThemeButton opens the zone picker, as the t key does
func (m *Model) onThemeButton() {
	m.pending = append(m.pending, m.openPicker())
}

// setSize updates the window dimensions
func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.text.Resize(width)
	m.toast.SetWidth(width)
	m.tree.Layout(height)
}
