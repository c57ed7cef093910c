package components

import (
	"github.com/john/tinter/internal/ui/widget"
)

// SelectedProperty marks a toolbar button as pressed in
const SelectedProperty = "toolbar.selected"

// Runner starts and stops the sketch
type Runner interface {
	HandleRun()
	HandlePresent()
	HandleStop()
	ToggleDebug()
	DebuggerEnabled() bool
}

// Debugger steps through a running sketch
type Debugger interface {
	StepOver()
	StepInto()
	StepOut()
	Continue()
}

// Modifiers are the keyboard modifiers held while pressing a button
type Modifiers struct {
	Shift bool
	Alt   bool
}

// ButtonID identifies a toolbar button
type ButtonID int

const (
	ButtonRun ButtonID = iota
	ButtonStep
	ButtonContinue
	ButtonStop
	ButtonTheme
	ButtonDebug
)

// String returns the string representation of ButtonID
func (id ButtonID) String() string {
	switch id {
	case ButtonRun:
		return "run"
	case ButtonStep:
		return "step"
	case ButtonContinue:
		return "continue"
	case ButtonStop:
		return "stop"
	case ButtonTheme:
		return "theme"
	case ButtonDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Toolbar is the row of editor buttons. Its buttons are widgets inside the
// window tree, so they take part in outer recoloring.
type Toolbar struct {
	root     *widget.Node
	buttons  map[ButtonID]*widget.Node
	order    []ButtonID
	runner   Runner
	debugger Debugger
	onTheme  func()
}

// NewToolbar creates a toolbar and builds its buttons for the runner's
// current debugger state
func NewToolbar(runner Runner, debugger Debugger, onTheme func()) *Toolbar {
	tb := &Toolbar{
		root:     widget.NewNode("toolbar", widget.KindToolbar).WithLayout(widget.LayoutHorizontal),
		runner:   runner,
		debugger: debugger,
		onTheme:  onTheme,
	}
	tb.Rebuild()
	return tb
}

// Node returns the toolbar's widget
func (tb *Toolbar) Node() *widget.Node {
	return tb.root
}

// Rebuild recreates the buttons. Step and Continue only exist while the
// debugger is armed, and Run is labelled Debug.
func (tb *Toolbar) Rebuild() {
	armed := tb.runner.DebuggerEnabled()

	tb.buttons = make(map[ButtonID]*widget.Node)
	tb.order = tb.order[:0]

	runLabel := "Run"
	if armed {
		runLabel = "Debug"
	}
	tb.addButton(ButtonRun, runLabel)

	if armed {
		tb.addButton(ButtonStep, "Step")
		tb.addButton(ButtonContinue, "Continue")
	}

	tb.addButton(ButtonStop, "Stop")
	tb.addButton(ButtonTheme, "Toggle Theme")

	debug := tb.addButton(ButtonDebug, "Debug")
	if armed {
		debug.PutStyleProperty(SelectedProperty, "true")
	}

	children := make([]widget.Widget, 0, len(tb.order))
	for _, id := range tb.order {
		children = append(children, tb.buttons[id])
	}
	tb.root.SetChildren(children...)
}

func (tb *Toolbar) addButton(id ButtonID, label string) *widget.Node {
	b := widget.NewNode("button."+id.String(), widget.KindButton)
	b.Content = label
	tb.buttons[id] = b
	tb.order = append(tb.order, id)
	return b
}

// Buttons returns the ids of the current buttons in display order
func (tb *Toolbar) Buttons() []ButtonID {
	ids := make([]ButtonID, len(tb.order))
	copy(ids, tb.order)
	return ids
}

// Button returns the widget for id, or nil if it is not shown
func (tb *Toolbar) Button(id ButtonID) *widget.Node {
	return tb.buttons[id]
}

// Has reports whether id is currently shown
func (tb *Toolbar) Has(id ButtonID) bool {
	_, ok := tb.buttons[id]
	return ok
}

// Hint is the rollover text for id with mods held
func (tb *Toolbar) Hint(id ButtonID, mods Modifiers) string {
	switch id {
	case ButtonRun:
		if mods.Shift {
			return "Present"
		}
		if tb.runner.DebuggerEnabled() {
			return "Debug"
		}
		return "Run"
	case ButtonStep:
		switch {
		case mods.Shift:
			return "Step Into"
		case mods.Alt:
			return "Step Out"
		default:
			return "Step"
		}
	case ButtonContinue:
		return "Continue"
	case ButtonStop:
		return "Stop"
	case ButtonTheme:
		return "Toggle Theme"
	case ButtonDebug:
		return "Debug"
	}
	return ""
}

// Press performs the action of id. Pressing a button that is not shown
// does nothing and returns false.
func (tb *Toolbar) Press(id ButtonID, mods Modifiers) bool {
	if !tb.Has(id) {
		return false
	}

	switch id {
	case ButtonRun:
		if mods.Shift {
			tb.runner.HandlePresent()
		} else {
			tb.runner.HandleRun()
		}
	case ButtonStep:
		switch {
		case mods.Shift:
			tb.debugger.StepInto()
		case mods.Alt:
			tb.debugger.StepOut()
		default:
			tb.debugger.StepOver()
		}
	case ButtonContinue:
		tb.debugger.Continue()
	case ButtonStop:
		tb.runner.HandleStop()
	case ButtonTheme:
		if tb.onTheme != nil {
			tb.onTheme()
		}
	case ButtonDebug:
		tb.runner.ToggleDebug()
		tb.Rebuild()
	}
	return true
}

// ActivateContinue shows the Continue button as pressed
func (tb *Toolbar) ActivateContinue() {
	tb.setSelected(ButtonContinue, true)
}

// DeactivateContinue releases the Continue button
func (tb *Toolbar) DeactivateContinue() {
	tb.setSelected(ButtonContinue, false)
}

// ActivateStep shows the Step button as pressed
func (tb *Toolbar) ActivateStep() {
	tb.setSelected(ButtonStep, true)
}

// DeactivateStep releases the Step button
func (tb *Toolbar) DeactivateStep() {
	tb.setSelected(ButtonStep, false)
}

// Selected reports whether id is shown as pressed
func (tb *Toolbar) Selected(id ButtonID) bool {
	b := tb.buttons[id]
	if b == nil {
		return false
	}
	_, ok := b.StyleProperty(SelectedProperty)
	return ok
}

func (tb *Toolbar) setSelected(id ButtonID, selected bool) {
	b := tb.buttons[id]
	if b == nil {
		return
	}
	if selected {
		b.PutStyleProperty(SelectedProperty, "true")
	} else {
		b.PutStyleProperty(SelectedProperty, "")
	}
}
