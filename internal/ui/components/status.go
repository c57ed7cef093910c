package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/john/tinter/internal/recolor"
	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/widget"
)

// StatusBar summarizes the last zone change and the editor mode
type StatusBar struct {
	themeName string
	armed     bool

	last      *recolor.Result
	appliedAt time.Time

	now func() time.Time
}

// NewStatusBar creates a new status bar
func NewStatusBar(themeName string) *StatusBar {
	return &StatusBar{themeName: themeName, now: time.Now}
}

// SetTheme sets the displayed theme name
func (sb *StatusBar) SetTheme(name string) {
	sb.themeName = name
}

// SetDebuggerArmed shows or hides the debug marker
func (sb *StatusBar) SetDebuggerArmed(armed bool) {
	sb.armed = armed
}

// RecordResult remembers the last applied change
func (sb *StatusBar) RecordResult(r recolor.Result) {
	sb.last = &r
	sb.appliedAt = sb.now()
}

// LastResult returns the last applied change
func (sb *StatusBar) LastResult() (recolor.Result, bool) {
	if sb.last == nil {
		return recolor.Result{}, false
	}
	return *sb.last, true
}

// Text returns the unstyled status line
func (sb *StatusBar) Text() string {
	var parts []string

	if sb.last != nil {
		r := sb.last
		parts = append(parts, fmt.Sprintf("%s %s on %s", r.Zone, r.Background.Hex(), r.Foreground.Hex()))
		parts = append(parts, fmt.Sprintf("contrast %.1f:1", color.ContrastRatio(r.Foreground, r.Background)))
		if r.Saved() {
			parts = append(parts, "saved "+humanize.RelTime(sb.appliedAt, sb.now(), "ago", "from now"))
		} else {
			parts = append(parts, "not saved")
		}
	} else {
		parts = append(parts, "press t to customize a zone")
	}

	parts = append(parts, "theme "+sb.themeName)
	if sb.armed {
		parts = append(parts, "debug")
	}
	return strings.Join(parts, " · ")
}

// Render is a ContentFunc for the status widget
func (sb *StatusBar) Render(n *widget.Node, width, height int) string {
	return ansi.Truncate(sb.Text(), width, "…")
}
