package recolor

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/widget"
)

var themeBlue = color.MustParseHex("#3b82f6")

// editorTree mirrors the shell layout: chrome around a code area, an
// error table and a console inside a scroll pane
type editorTree struct {
	root          *widget.Node
	header        *widget.Node
	toolbar       *widget.Node
	runButton     *widget.Node
	body          *widget.Node
	codeScroll    *widget.Node
	code          *widget.Node
	errors        *widget.Node
	consoleScroll *widget.Node
	console       *widget.Node
	consoleLine   *widget.Node
	status        *widget.Node
}

func newEditorTree() *editorTree {
	t := &editorTree{
		root:          widget.NewNode("window", widget.KindPanel),
		header:        widget.NewNode("header", widget.KindHeader),
		toolbar:       widget.NewNode("toolbar", widget.KindToolbar),
		runButton:     widget.NewNode("run", widget.KindButton),
		body:          widget.NewNode("body", widget.KindPanel),
		codeScroll:    widget.NewNode("code-scroll", widget.KindScrollPane),
		code:          widget.NewNode("code", widget.KindTextArea),
		errors:        widget.NewNode("errors", widget.KindErrorTable),
		consoleScroll: widget.NewNode("console-scroll", widget.KindScrollPane),
		console:       widget.NewNode("console", widget.KindConsole),
		consoleLine:   widget.NewNode("console-line", widget.KindLabel),
		status:        widget.NewNode("status", widget.KindStatusBar),
	}

	t.toolbar.Add(t.runButton)
	t.codeScroll.Add(t.code)
	t.console.Add(t.consoleLine)
	t.consoleScroll.Add(t.console)
	t.body.Add(t.codeScroll, t.errors, t.consoleScroll)
	t.root.Add(t.header, t.toolbar, t.body, t.status)

	border := lipgloss.NormalBorder()
	for _, n := range t.all() {
		n.SetBackground(themeBlue)
		n.SetForeground(color.White)
		n.SetBorder(&border)
	}
	return t
}

func (t *editorTree) all() []*widget.Node {
	return []*widget.Node{
		t.root, t.header, t.toolbar, t.runButton, t.body, t.codeScroll,
		t.code, t.errors, t.consoleScroll, t.console, t.consoleLine, t.status,
	}
}

type nodeState struct {
	Background color.Color
	Foreground color.Color
	Opaque     bool
	HasBorder  bool
	Lock       string
}

func stateOf(n *widget.Node) nodeState {
	lock, _ := n.StyleProperty(widget.StyleLockKey)
	return nodeState{
		Background: n.Background(),
		Foreground: n.Foreground(),
		Opaque:     n.Opaque(),
		HasBorder:  n.Border() != nil,
		Lock:       lock,
	}
}

func (t *editorTree) snapshot() map[string]nodeState {
	snap := make(map[string]nodeState)
	for _, n := range t.all() {
		snap[n.Name] = stateOf(n)
	}
	return snap
}

// fakeHost records redraw requests
type fakeHost struct {
	tree        *editorTree
	calls       []string
	headerBuilt int
	reapplied   int
}

func newFakeHost(tree *editorTree) *fakeHost {
	return &fakeHost{tree: tree}
}

func (h *fakeHost) CodeSurface() widget.Widget    { return h.tree.code }
func (h *fakeHost) ConsoleSurface() widget.Widget { return h.tree.console }
func (h *fakeHost) WindowRoot() widget.Widget     { return h.tree.root }
func (h *fakeHost) ReapplyPreferences()           { h.reapplied++; h.calls = append(h.calls, "reapply") }
func (h *fakeHost) RebuildHeader()                { h.headerBuilt++; h.calls = append(h.calls, "header") }

func (h *fakeHost) Revalidate(w widget.Widget) {
	h.calls = append(h.calls, "revalidate:"+w.(*widget.Node).Name)
}

func (h *fakeHost) Repaint(w widget.Widget) {
	h.calls = append(h.calls, "repaint:"+w.(*widget.Node).Name)
}

// fakePrefs records every operation in order
type fakePrefs struct {
	pending map[string]string
	durable map[string]string
	ops     []string
	saveErr error
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{pending: map[string]string{}, durable: map[string]string{}}
}

func (p *fakePrefs) Set(key, value string) {
	p.pending[key] = value
	p.ops = append(p.ops, "set:"+key)
}

func (p *fakePrefs) Save() error {
	p.ops = append(p.ops, "save")
	if p.saveErr != nil {
		return p.saveErr
	}
	for k, v := range p.pending {
		p.durable[k] = v
	}
	return nil
}

var errDiskFull = errors.New("disk full")

// scriptedDialog returns canned answers
type scriptedDialog struct {
	zone        Zone
	zoneOK      bool
	color       color.Color
	colorOK     bool
	colorTitle  string
	colorCalled bool
}

func (d *scriptedDialog) ChooseZone([]Zone) (Zone, bool) {
	return d.zone, d.zoneOK
}

func (d *scriptedDialog) ChooseColor(title string, _ color.Color) (color.Color, bool) {
	d.colorCalled = true
	d.colorTitle = title
	return d.color, d.colorOK
}
