package recolor

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john/tinter/internal/ui/color"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

func newTestPicker(tree *editorTree) (*Picker, *fakeHost, *fakePrefs, *recordingNotifier) {
	host := newFakeHost(tree)
	prefs := newFakePrefs()
	notifier := &recordingNotifier{}
	logger := log.New(io.Discard)
	return NewPicker(host, prefs, notifier, logger), host, prefs, notifier
}

func TestApplyOuterScenario(t *testing.T) {
	tree := newEditorTree()
	picker, host, prefs, notifier := newTestPicker(tree)
	before := tree.snapshot()
	pink := color.RGB(255, 0, 128)

	result := picker.Apply(ZoneOuter, pink)

	assert.True(t, result.Saved())
	assert.Equal(t, color.White, result.Foreground)
	assert.Equal(t, map[string]string{KeyHeaderColor: "#ff0080"}, prefs.durable)
	assert.Empty(t, notifier.messages)

	assert.Equal(t, before["code"], stateOf(tree.code))
	assert.Equal(t, before["console"], stateOf(tree.console))
	assert.Equal(t, before["errors"], stateOf(tree.errors))

	for _, n := range tree.all() {
		if n == tree.code || n == tree.console || n == tree.errors {
			continue
		}
		assert.Equal(t, pink, n.Background(), n.Name)
		assert.Equal(t, color.White, n.Foreground(), n.Name)
	}

	assert.Equal(t, 1, host.headerBuilt)
	assert.Equal(t, 1, host.reapplied)
}

func TestApplyInnerScenario(t *testing.T) {
	tree := newEditorTree()
	picker, host, prefs, _ := newTestPicker(tree)
	before := tree.snapshot()

	result := picker.Apply(ZoneInner, color.White)

	assert.Equal(t, color.Black, result.Foreground)
	assert.Equal(t, map[string]string{
		KeyEditorBgColor: "#ffffff",
		KeyEditorFgColor: "#000000",
	}, prefs.durable)
	assert.Equal(t, color.White, tree.code.Background())
	assert.Equal(t, color.Black, tree.code.Foreground())
	assert.True(t, tree.code.Opaque())

	// outer root and chrome stay as they were
	assert.Equal(t, before["window"], stateOf(tree.root))
	assert.Equal(t, before["header"], stateOf(tree.header))
	assert.Equal(t, before["code-scroll"], stateOf(tree.codeScroll))
	assert.Zero(t, host.headerBuilt)
}

func TestApplyConsoleScenario(t *testing.T) {
	tree := newEditorTree()
	picker, _, prefs, _ := newTestPicker(tree)
	before := tree.snapshot()
	dark := color.RGB(20, 20, 20)

	result := picker.Apply(ZoneConsole, dark)

	assert.Equal(t, color.White, result.Foreground)
	assert.Equal(t, map[string]string{KeyConsoleColor: "#141414"}, prefs.durable)
	assert.Equal(t, dark, tree.console.Background())
	assert.Equal(t, dark, tree.consoleScroll.Background())
	assert.True(t, tree.consoleScroll.Opaque())
	assert.Equal(t, before["window"], stateOf(tree.root))
}

func TestApplySetsAllKeysBeforeSingleSave(t *testing.T) {
	tree := newEditorTree()
	picker, _, prefs, _ := newTestPicker(tree)

	picker.Apply(ZoneInner, color.RGB(1, 2, 3))

	require.Len(t, prefs.ops, 3)
	assert.ElementsMatch(t, []string{"set:" + KeyEditorBgColor, "set:" + KeyEditorFgColor}, prefs.ops[:2])
	assert.Equal(t, "save", prefs.ops[2])
}

func TestApplyRecolorsEvenWhenSaveFails(t *testing.T) {
	tree := newEditorTree()
	picker, _, prefs, notifier := newTestPicker(tree)
	prefs.saveErr = errDiskFull
	dark := color.RGB(20, 20, 20)

	result := picker.Apply(ZoneConsole, dark)

	assert.False(t, result.Saved())
	assert.ErrorIs(t, result.SaveErr, errDiskFull)
	assert.Empty(t, prefs.durable)
	assert.Equal(t, dark, tree.console.Background())
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "not saved")
}

func TestApplyRedrawRequests(t *testing.T) {
	tree := newEditorTree()
	picker, host, _, _ := newTestPicker(tree)

	picker.Apply(ZoneConsole, color.White)

	assert.Equal(t, []string{
		"revalidate:console",
		"repaint:console",
		"repaint:code",
		"repaint:console",
		"reapply",
	}, host.calls)
}

func TestApplyIsIdempotent(t *testing.T) {
	once := newEditorTree()
	twice := newEditorTree()
	c := color.RGB(255, 0, 128)

	p1, _, _, _ := newTestPicker(once)
	p2, _, prefs2, _ := newTestPicker(twice)

	for _, z := range Zones() {
		p1.Apply(z, c)
		p2.Apply(z, c)
		p2.Apply(z, c)
	}

	assert.Equal(t, once.snapshot(), twice.snapshot())
	assert.Equal(t, "#ff0080", prefs2.durable[KeyHeaderColor])
}

func TestRunCancelledAtColor(t *testing.T) {
	tree := newEditorTree()
	picker, host, prefs, _ := newTestPicker(tree)
	before := tree.snapshot()

	dialog := &scriptedDialog{zone: ZoneOuter, zoneOK: true, colorOK: false}
	_, applied := picker.Run(dialog)

	assert.False(t, applied)
	assert.True(t, dialog.colorCalled)
	assert.Equal(t, "Customize Outer Theme", dialog.colorTitle)
	assert.Equal(t, before, tree.snapshot())
	assert.Empty(t, prefs.ops)
	assert.Empty(t, host.calls)
}

func TestRunCancelledAtZone(t *testing.T) {
	tree := newEditorTree()
	picker, host, prefs, _ := newTestPicker(tree)
	before := tree.snapshot()

	dialog := &scriptedDialog{zoneOK: false}
	_, applied := picker.Run(dialog)

	assert.False(t, applied)
	assert.False(t, dialog.colorCalled)
	assert.Equal(t, before, tree.snapshot())
	assert.Empty(t, prefs.ops)
	assert.Empty(t, host.calls)
}

func TestRunApplies(t *testing.T) {
	tree := newEditorTree()
	picker, _, prefs, _ := newTestPicker(tree)

	dialog := &scriptedDialog{zone: ZoneInner, zoneOK: true, color: color.White, colorOK: true}
	result, applied := picker.Run(dialog)

	require.True(t, applied)
	assert.Equal(t, ZoneInner, result.Zone)
	assert.Equal(t, "#ffffff", prefs.durable[KeyEditorBgColor])
}

func TestRestoreDoesNotPersistOrRedraw(t *testing.T) {
	tree := newEditorTree()
	picker, host, prefs, _ := newTestPicker(tree)

	stats := picker.Restore(ZoneOuter, color.RGB(255, 0, 128))

	assert.Equal(t, 3, stats.Excluded)
	assert.Empty(t, prefs.ops)
	assert.Empty(t, host.calls)
	assert.Equal(t, color.RGB(255, 0, 128), tree.header.Background())
}
