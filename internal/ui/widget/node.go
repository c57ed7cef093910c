package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/john/tinter/internal/ui/color"
)

// Kind is the concrete type of a Node
type Kind int

const (
	KindPanel Kind = iota
	KindHeader
	KindToolbar
	KindButton
	KindScrollPane
	KindTextArea
	KindConsole
	KindErrorTable
	KindStatusBar
	KindLabel
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindPanel:
		return "Panel"
	case KindHeader:
		return "Header"
	case KindToolbar:
		return "Toolbar"
	case KindButton:
		return "Button"
	case KindScrollPane:
		return "ScrollPane"
	case KindTextArea:
		return "TextArea"
	case KindConsole:
		return "Console"
	case KindErrorTable:
		return "ErrorTable"
	case KindStatusBar:
		return "StatusBar"
	case KindLabel:
		return "Label"
	default:
		return "Unknown"
	}
}

// Layout controls how a node arranges its children
type Layout int

const (
	LayoutVertical Layout = iota
	LayoutHorizontal
)

// Node is the concrete Widget used by the editor shell
type Node struct {
	Name    string
	Kind    Kind
	Layout  Layout
	Content string

	// Height is a row hint for the renderer; 0 means size to content
	Height int

	background color.Color
	foreground color.Color
	opaque     bool
	border     *lipgloss.Border
	props      map[string]string
	children   []Widget
}

// NewNode creates a new transparent, borderless node
func NewNode(name string, kind Kind) *Node {
	return &Node{
		Name:  name,
		Kind:  kind,
		props: make(map[string]string),
	}
}

// Add appends children and returns the node for chaining
func (n *Node) Add(children ...Widget) *Node {
	n.children = append(n.children, children...)
	return n
}

// SetChildren replaces the node's children
func (n *Node) SetChildren(children ...Widget) *Node {
	n.children = children
	return n
}

// WithLayout sets the child layout and returns the node for chaining
func (n *Node) WithLayout(layout Layout) *Node {
	n.Layout = layout
	return n
}

func (n *Node) Background() color.Color      { return n.background }
func (n *Node) SetBackground(c color.Color)  { n.background = c }
func (n *Node) Foreground() color.Color      { return n.foreground }
func (n *Node) SetForeground(c color.Color)  { n.foreground = c }
func (n *Node) Opaque() bool                 { return n.opaque }
func (n *Node) SetOpaque(opaque bool)        { n.opaque = opaque }
func (n *Node) Border() *lipgloss.Border     { return n.border }
func (n *Node) SetBorder(b *lipgloss.Border) { n.border = b }
func (n *Node) Children() []Widget           { return n.children }
func (n *Node) TypeName() string             { return "widget." + n.Kind.String() }

// StyleProperty returns a style annotation
func (n *Node) StyleProperty(key string) (string, bool) {
	v, ok := n.props[key]
	return v, ok
}

// PutStyleProperty sets a style annotation; an empty value removes it
func (n *Node) PutStyleProperty(key, value string) {
	if n.props == nil {
		n.props = make(map[string]string)
	}
	if value == "" {
		delete(n.props, key)
		return
	}
	n.props[key] = value
}

// Style converts the node's visual attributes into a lipgloss style
func (n *Node) Style() lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(n.foreground.Lipgloss())
	if n.opaque {
		style = style.Background(n.background.Lipgloss())
	}
	if n.border != nil {
		style = style.Border(*n.border).BorderForeground(n.foreground.Lipgloss())
		if n.opaque {
			style = style.BorderBackground(n.background.Lipgloss())
		}
	}
	return style
}
