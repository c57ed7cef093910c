// Package recolor applies a user-picked color to one zone of the editor's
// widget tree, persists it and asks the host to redraw.
package recolor

import (
	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/widget"
)

// Host is the editor window that owns the widget tree
type Host interface {
	CodeSurface() widget.Widget
	ConsoleSurface() widget.Widget
	WindowRoot() widget.Widget

	// ReapplyPreferences re-reads preferences and refreshes the look and feel
	ReapplyPreferences()
	// RebuildHeader regenerates the header chrome after an outer change
	RebuildHeader()

	Revalidate(w widget.Widget)
	Repaint(w widget.Widget)
}

// Preferences is the key/value store zone colors are persisted to.
// Set only updates memory; Save makes every pending Set durable.
type Preferences interface {
	Set(key, value string)
	Save() error
}

// Dialog asks the user for a zone and a color. The bool result is false
// when the user dismissed the dialog.
type Dialog interface {
	ChooseZone(zones []Zone) (Zone, bool)
	ChooseColor(title string, initial color.Color) (color.Color, bool)
}

// Notifier shows a non-blocking message to the user
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

// Notify implements Notifier
func (f NotifierFunc) Notify(message string) {
	f(message)
}
