package app

import (
	"github.com/john/tinter/internal/ui/widget"
)

const (
	minPaneRows  = 3
	errorRows    = 2
	toastRows    = 1
	headerRows   = 1
	statusRows   = 1
	codeRowShare = 0.6
)

// EditorTree is the editor window's widget tree:
//
//	window
//	├── header
//	├── toolbar
//	├── body
//	│   ├── code.scroll ─ code
//	│   ├── errors
//	│   └── console.scroll ─ console
//	└── status
type EditorTree struct {
	Window        *widget.Node
	Header        *widget.Node
	Toolbar       *widget.Node
	Body          *widget.Node
	CodeScroll    *widget.Node
	Code          *widget.Node
	Errors        *widget.Node
	ConsoleScroll *widget.Node
	Console       *widget.Node
	Status        *widget.Node
}

// NewEditorTree assembles the window around toolbar
func NewEditorTree(toolbar *widget.Node) *EditorTree {
	t := &EditorTree{
		Window:        widget.NewNode("window", widget.KindPanel),
		Header:        widget.NewNode("header", widget.KindHeader),
		Toolbar:       toolbar,
		Body:          widget.NewNode("body", widget.KindPanel),
		CodeScroll:    widget.NewNode("code.scroll", widget.KindScrollPane),
		Code:          widget.NewNode("code", widget.KindTextArea),
		Errors:        widget.NewNode("errors", widget.KindErrorTable),
		ConsoleScroll: widget.NewNode("console.scroll", widget.KindScrollPane),
		Console:       widget.NewNode("console", widget.KindConsole),
		Status:        widget.NewNode("status", widget.KindStatusBar),
	}

	t.Errors.Content = "No problems"
	t.Errors.Height = errorRows
	t.Header.Height = headerRows
	t.Status.Height = statusRows

	t.CodeScroll.Add(t.Code)
	t.ConsoleScroll.Add(t.Console)
	t.Body.Add(t.CodeScroll, t.Errors, t.ConsoleScroll)
	t.Window.Add(t.Header, t.Toolbar, t.Body, t.Status)
	return t
}

// Layout splits the rows left over by the fixed chrome between the code
// and console surfaces. Frames are measured on the current borders since
// an outer recolor removes them.
func (t *EditorTree) Layout(height int) {
	fixed := headerRows + t.toolbarRows() + errorRows + statusRows + toastRows
	fixed += frameRows(t.CodeScroll) + frameRows(t.ConsoleScroll)

	avail := height - fixed
	code := int(float64(avail) * codeRowShare)
	console := avail - code

	t.Code.Height = max(code, minPaneRows)
	t.Console.Height = max(console, minPaneRows)
}

func (t *EditorTree) toolbarRows() int {
	rows := 1
	for _, child := range t.Toolbar.Children() {
		if r := 1 + frameRows(child); r > rows {
			rows = r
		}
	}
	return rows
}

func frameRows(w widget.Widget) int {
	b := w.Border()
	if b == nil {
		return 0
	}
	rows := 0
	if b.Top != "" {
		rows++
	}
	if b.Bottom != "" {
		rows++
	}
	return rows
}
