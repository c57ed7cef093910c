package app

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john/tinter/internal/recolor"
	"github.com/john/tinter/internal/storage"
	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/components"
	"github.com/john/tinter/internal/ui/widget"
)

type testClipboard struct {
	copied []string
	err    error
}

func (c *testClipboard) write(s string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, s)
	return nil
}

func newTestModelAt(t *testing.T, home string) (*Model, *testClipboard) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("TINTER_THEME", "charm-dark")

	st, err := storage.New()
	require.NoError(t, err)

	logger := log.New(io.Discard)
	st.SetLogger(logger)

	clip := &testClipboard{}
	m := New(Options{Storage: st, Logger: logger, Clipboard: clip.write})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, clip
}

func newTestModel(t *testing.T) (*Model, *testClipboard) {
	return newTestModelAt(t, t.TempDir())
}

func press(m *Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		msg = tea.KeyMsg{Type: tea.KeyCtrlR}
	case "pgup":
		msg = tea.KeyMsg{Type: tea.KeyPgUp}
	case "alt+n":
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n"), Alt: true}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestNew(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, StateEditing, m.GetCurrentState())
	assert.True(t, m.ready)
	assert.Contains(t, m.tree.Header.Content, "sketch.pde")
	assert.Contains(t, m.tree.Header.Content, "Charm Dark")
	assert.True(t, widget.Contains(m.WindowRoot(), m.toolbar.Node()))
	assert.Same(t, m.tree.Code, m.CodeSurface())
	assert.Same(t, m.tree.Console, m.ConsoleSurface())
}

func TestApplyOuterLeavesProtectedSurfaces(t *testing.T) {
	m, _ := newTestModel(t)
	pink := color.MustParseHex("#ff0080")
	codeBefore := m.tree.Code.Background()
	consoleBefore := m.tree.Console.Background()

	m.applyZoneColor(recolor.ZoneOuter, pink)

	for _, n := range []*widget.Node{m.tree.Window, m.tree.Header, m.tree.Body, m.tree.CodeScroll, m.tree.Status} {
		assert.Equal(t, pink, n.Background(), n.Name)
		assert.Nil(t, n.Border(), n.Name)
	}
	assert.Equal(t, pink, m.toolbar.Button(components.ButtonRun).Background())

	assert.Equal(t, codeBefore, m.tree.Code.Background())
	assert.Equal(t, consoleBefore, m.tree.Console.Background())
	assert.NotEqual(t, pink, m.tree.Errors.Background())

	hex, ok := m.storage.Preferences.Get(recolor.KeyHeaderColor)
	require.True(t, ok)
	assert.Equal(t, "#ff0080", hex)
	assert.Equal(t, "#ff0080", m.lastHex)

	result, ok := m.statusBar.LastResult()
	require.True(t, ok)
	assert.True(t, result.Saved())
	assert.Contains(t, m.repaints, "window")
	assert.Contains(t, m.repaints, "code")
	assert.Contains(t, m.repaints, "console")
	assert.Greater(t, m.revalidations, 0)
	assert.Equal(t, 2, m.headerBuilds)

	changes, err := m.storage.History.List(1)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "outer", changes[0].Zone)
	assert.Equal(t, "#ff0080", changes[0].Background)
}

func TestOverrideSurvivesRefresh(t *testing.T) {
	m, _ := newTestModel(t)
	dark := color.MustParseHex("#141414")

	m.applyZoneColor(recolor.ZoneConsole, dark)
	press(m, "ctrl+r")

	assert.Equal(t, dark, m.tree.Console.Background())
	assert.Equal(t, color.White, m.tree.Console.Foreground())
	assert.Equal(t, dark, m.tree.ConsoleScroll.Background())
	assert.NotEqual(t, dark, m.tree.Window.Background())
}

func TestInnerColorRestoredOnRestart(t *testing.T) {
	home := t.TempDir()
	first, _ := newTestModelAt(t, home)
	first.applyZoneColor(recolor.ZoneInner, color.White)

	fg, ok := first.storage.Preferences.Get(recolor.KeyEditorFgColor)
	require.True(t, ok)
	assert.Equal(t, "#000000", fg)

	second, _ := newTestModelAt(t, home)
	assert.Equal(t, color.White, second.tree.Code.Background())
	assert.Equal(t, color.Black, second.tree.Code.Foreground())
	assert.NotEqual(t, color.White, second.tree.Window.Background())
}

func TestInvalidSavedColorIsIgnored(t *testing.T) {
	home := t.TempDir()
	first, _ := newTestModelAt(t, home)
	first.storage.Preferences.Set(recolor.KeyConsoleColor, "not-a-color")
	require.NoError(t, first.storage.Preferences.Save())

	second, _ := newTestModelAt(t, home)
	_, locked := widget.LockOf(second.tree.Console)
	assert.False(t, locked)
}

func TestPickerOpensAndCancels(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "t")
	require.Equal(t, StatePickingZone, m.GetCurrentState())
	require.NotNil(t, m.pickerFlow)
	assert.NotEmpty(t, m.View())

	press(m, "esc")
	assert.Equal(t, StateEditing, m.GetCurrentState())
	assert.Nil(t, m.pickerFlow)
	_, ok := m.statusBar.LastResult()
	assert.False(t, ok)
}

func TestResetZones(t *testing.T) {
	m, _ := newTestModel(t)
	m.applyZoneColor(recolor.ZoneOuter, color.MustParseHex("#ff0080"))
	m.applyZoneColor(recolor.ZoneInner, color.White)

	press(m, "x")

	assert.Empty(t, m.storage.Preferences.Keys())
	_, locked := widget.LockOf(m.tree.Header)
	assert.False(t, locked)
	theme := m.themes.GetCurrentTheme()
	assert.Equal(t, theme.Colors.Header, m.tree.Header.Background())
	assert.Equal(t, theme.Colors.CodeBackground, m.tree.Code.Background())

	reloaded, err := storage.LoadPreferences(m.storage.Preferences.Path())
	require.NoError(t, err)
	assert.Empty(t, reloaded.Keys())
}

func TestCycleThemeKeepsOverrides(t *testing.T) {
	m, _ := newTestModel(t)
	pink := color.MustParseHex("#ff0080")
	m.applyZoneColor(recolor.ZoneOuter, pink)

	press(m, "T")

	assert.Equal(t, "charm-light", m.themes.GetCurrentTheme().Name)
	assert.Equal(t, "charm-light", m.storage.Config.Theme)
	assert.Equal(t, pink, m.tree.Header.Background())
	assert.Equal(t, m.themes.GetCurrentTheme().Colors.CodeBackground, m.tree.Code.Background())
	assert.Contains(t, m.tree.Header.Content, "Charm Light")
}

func TestCopyLastColor(t *testing.T) {
	m, clip := newTestModel(t)

	press(m, "y")
	assert.Empty(t, clip.copied)
	assert.Equal(t, "No color applied yet", m.toast.Message())

	m.applyZoneColor(recolor.ZoneConsole, color.MustParseHex("#141414"))
	press(m, "y")
	assert.Equal(t, []string{"#141414"}, clip.copied)

	clip.err = errors.New("no display")
	press(m, "y")
	assert.Equal(t, "Clipboard is not available", m.toast.Message())
	assert.Equal(t, components.NotificationWarning, m.toast.Kind())
}

func TestDebugToggleRepaintsNewButtons(t *testing.T) {
	m, _ := newTestModel(t)
	pink := color.MustParseHex("#ff0080")
	m.applyZoneColor(recolor.ZoneOuter, pink)

	press(m, "d")

	require.True(t, m.toolbar.Has(components.ButtonStep))
	assert.True(t, m.storage.Config.DebuggerArmed)
	for _, id := range m.toolbar.Buttons() {
		assert.Equal(t, pink, m.toolbar.Button(id).Background(), id.String())
	}
	assert.Contains(t, m.statusBar.Text(), "debug")
}

func TestToolbarKeys(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "n")
	assert.Equal(t, "Step is only available while debugging", m.toast.Message())

	press(m, "r")
	press(m, "R")
	press(m, "s")
	press(m, "d")
	press(m, "r")
	assert.True(t, m.toolbar.Selected(components.ButtonStep))
	press(m, "n")
	press(m, "N")
	press(m, "alt+n")
	press(m, "c")
	assert.False(t, m.toolbar.Selected(components.ButtonStep))

	assert.Equal(t, []string{
		"Running sketch.pde",
		"Presenting sketch.pde",
		"Stopped sketch.pde",
		"Debugger armed",
		"Debugging sketch.pde, paused at line 1",
		"Step over",
		"Step into",
		"Step out",
		"Continuing sketch.pde",
	}, m.console.Lines())
}

func TestHelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "?")
	require.Equal(t, StateHelp, m.GetCurrentState())
	assert.Contains(t, m.help.Markdown(), "Customize a zone color")
	assert.NotEmpty(t, ansi.Strip(m.View()))

	press(m, "q")
	assert.Equal(t, StateEditing, m.GetCurrentState())

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, StateShutdown, m.GetCurrentState())
}

func TestViewRendersEditor(t *testing.T) {
	m, _ := newTestModel(t)
	m.applyZoneColor(recolor.ZoneConsole, color.MustParseHex("#141414"))

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "sketch.pde")
	assert.Contains(t, view, "No problems")
	assert.Contains(t, view, "Console #141414")
	assert.Contains(t, view, "Stop")
}

func TestSaveFailureStillRecolors(t *testing.T) {
	m, _ := newTestModel(t)
	m.picker = recolor.NewPicker(m, &blockedPreferences{}, m, m.logger)

	dark := color.MustParseHex("#141414")
	m.applyZoneColor(recolor.ZoneConsole, dark)

	assert.Equal(t, dark, m.tree.Console.Background())
	assert.Equal(t, components.NotificationWarning, m.toast.Kind())
	assert.Contains(t, m.toast.Message(), "not saved")
	assert.NotEmpty(t, m.pending)

	result, _ := m.statusBar.LastResult()
	assert.False(t, result.Saved())
}

type blockedPreferences struct{}

func (blockedPreferences) Set(string, string) {}
func (blockedPreferences) Save() error        { return errors.New("disk full") }

type scriptedDialog struct {
	zone   recolor.Zone
	color  color.Color
	cancel bool
	titles []string
}

func (d *scriptedDialog) ChooseZone([]recolor.Zone) (recolor.Zone, bool) {
	return d.zone, true
}

func (d *scriptedDialog) ChooseColor(title string, _ color.Color) (color.Color, bool) {
	d.titles = append(d.titles, title)
	return d.color, !d.cancel
}

func TestRunPicker(t *testing.T) {
	m, _ := newTestModel(t)
	dialog := &scriptedDialog{zone: recolor.ZoneInner, color: color.MustParseHex("#fafafa")}

	result, ok := m.RunPicker(dialog)
	require.True(t, ok)
	assert.Equal(t, []string{"Customize Inner Coding Area"}, dialog.titles)
	assert.Equal(t, recolor.ZoneInner, result.Zone)
	assert.Equal(t, "#fafafa", m.lastHex)
	assert.Equal(t, color.MustParseHex("#fafafa"), m.tree.Code.Background())

	dialog = &scriptedDialog{zone: recolor.ZoneConsole, color: color.Black, cancel: true}
	_, ok = m.RunPicker(dialog)
	assert.False(t, ok)
	assert.Equal(t, "#fafafa", m.lastHex)
	_, saved := m.storage.Preferences.Get(recolor.KeyConsoleColor)
	assert.False(t, saved)
}

func TestRenderWithoutEventLoop(t *testing.T) {
	m, _ := newTestModel(t)
	m.Apply(recolor.ZoneOuter, color.White)

	out := m.Render(60, 24)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 60)
	}
	assert.Contains(t, ansi.Strip(out), "Toggle Theme")
}

func TestThemeButtonOpensPicker(t *testing.T) {
	m, _ := newTestModel(t)
	themeBefore := m.themes.GetCurrentTheme().Name

	cmd := m.pressButton(components.ButtonTheme, components.Modifiers{})

	assert.NotNil(t, cmd)
	assert.Equal(t, StatePickingZone, m.GetCurrentState())
	require.NotNil(t, m.pickerFlow)
	assert.Equal(t, themeBefore, m.themes.GetCurrentTheme().Name)
	assert.Empty(t, m.pending)
}

func TestHelpReturnsToEditingAfterPicker(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "t")
	press(m, "esc")
	require.Equal(t, StateEditing, m.GetCurrentState())

	press(m, "?")
	require.Equal(t, StateHelp, m.GetCurrentState())
	press(m, "esc")
	assert.Equal(t, StateEditing, m.GetCurrentState())
}

func TestOuterKeepsSavedConsoleViewport(t *testing.T) {
	m, _ := newTestModel(t)
	dark := color.MustParseHex("#141414")
	pink := color.MustParseHex("#ff0080")

	m.Apply(recolor.ZoneConsole, dark)
	m.Apply(recolor.ZoneOuter, pink)

	assert.Equal(t, dark, m.tree.ConsoleScroll.Background())
	assert.Equal(t, color.White, m.tree.ConsoleScroll.Foreground())
	assert.Equal(t, pink, m.tree.CodeScroll.Background())

	press(m, "ctrl+r")
	assert.Equal(t, dark, m.tree.ConsoleScroll.Background())

	press(m, "d")
	assert.Equal(t, dark, m.tree.ConsoleScroll.Background())
	assert.Equal(t, dark, m.tree.Console.Background())
}

func TestOuterWithoutSavedConsolePaintsViewport(t *testing.T) {
	m, _ := newTestModel(t)
	pink := color.MustParseHex("#ff0080")

	m.Apply(recolor.ZoneOuter, pink)

	assert.Equal(t, pink, m.tree.ConsoleScroll.Background())
}
