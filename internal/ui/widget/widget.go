// Package widget defines the retained widget tree the editor shell is built
// from. The tree is owned by the host; recoloring code only mutates visual
// attributes through the Widget interface.
package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/john/tinter/internal/ui/color"
)

// Widget is the capability set recoloring and theming rely on.
// Implementations must be comparable (pointer types) so that identity
// checks against host-owned references work.
type Widget interface {
	Background() color.Color
	SetBackground(c color.Color)
	Foreground() color.Color
	SetForeground(c color.Color)

	// Opaque reports whether the widget paints its own background
	Opaque() bool
	SetOpaque(opaque bool)

	// Border returns nil when the widget has no border
	Border() *lipgloss.Border
	SetBorder(b *lipgloss.Border)

	StyleProperty(key string) (string, bool)
	PutStyleProperty(key, value string)

	Children() []Widget

	// TypeName identifies the widget type, e.g. "widget.TextArea"
	TypeName() string
}

// Walk visits root and its descendants depth-first in pre-order. Returning
// false from fn skips that widget's children.
func Walk(root Widget, fn func(Widget) bool) {
	if root == nil {
		return
	}

	stack := []Widget{root}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(w) {
			continue
		}

		children := w.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if children[i] != nil {
				stack = append(stack, children[i])
			}
		}
	}
}

// ParentOf returns the immediate parent of target under root, or nil
func ParentOf(root, target Widget) Widget {
	var parent Widget
	Walk(root, func(w Widget) bool {
		if parent != nil {
			return false
		}
		for _, child := range w.Children() {
			if child == target {
				parent = w
				return false
			}
		}
		return true
	})
	return parent
}

// Contains reports whether target is root or one of its descendants
func Contains(root, target Widget) bool {
	found := false
	Walk(root, func(w Widget) bool {
		if w == target {
			found = true
		}
		return !found
	})
	return found
}

// IsViewport reports whether w is a scroll container that paints a fill
// beneath its content
func IsViewport(w Widget) bool {
	if w == nil {
		return false
	}
	name := w.TypeName()
	return strings.Contains(name, "ScrollPane") || strings.Contains(name, "Viewport")
}
