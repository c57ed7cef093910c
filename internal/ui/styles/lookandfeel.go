package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/widget"
)

// roleDefaults is what a theme assigns to one widget type
type roleDefaults struct {
	background color.Color
	foreground color.Color
	border     *lipgloss.Border
}

// RefreshStats counts what a look-and-feel refresh did
type RefreshStats struct {
	Themed    int
	Preserved int
}

// LookAndFeel re-applies theme defaults to a widget tree. Widgets carrying
// a style lock keep their locked colors.
type LookAndFeel struct {
	themes *ThemeManager
}

// NewLookAndFeel creates a look and feel driven by themes
func NewLookAndFeel(themes *ThemeManager) *LookAndFeel {
	return &LookAndFeel{themes: themes}
}

// Theme returns the active theme
func (lf *LookAndFeel) Theme() *Theme {
	return lf.themes.GetCurrentTheme()
}

// Refresh re-themes root and all of its descendants
func (lf *LookAndFeel) Refresh(root widget.Widget) RefreshStats {
	theme := lf.Theme()

	var stats RefreshStats
	widget.Walk(root, func(w widget.Widget) bool {
		if lock, ok := widget.LockOf(w); ok {
			applyLock(w, lock)
			stats.Preserved++
			return true
		}

		d := defaultsFor(theme, typeSuffix(w.TypeName()))
		w.SetBackground(d.background)
		w.SetForeground(d.foreground)
		w.SetOpaque(true)
		w.SetBorder(d.border)
		stats.Themed++
		return true
	})
	return stats
}

// ClearLocks removes every style lock under root so the next Refresh
// returns it to theme defaults
func ClearLocks(root widget.Widget) int {
	cleared := 0
	widget.Walk(root, func(w widget.Widget) bool {
		if _, ok := w.StyleProperty(widget.StyleLockKey); ok {
			w.PutStyleProperty(widget.StyleLockKey, "")
			cleared++
		}
		return true
	})
	return cleared
}

func applyLock(w widget.Widget, lock widget.Lock) {
	w.SetBackground(lock.Background)
	w.SetOpaque(true)
	w.SetBorder(nil)
	if lock.HasForeground {
		w.SetForeground(lock.Foreground)
	} else {
		w.SetForeground(color.ContrastForeground(lock.Background))
	}
}

func typeSuffix(typeName string) string {
	if i := strings.LastIndex(typeName, "."); i >= 0 {
		return typeName[i+1:]
	}
	return typeName
}

func defaultsFor(theme *Theme, kind string) roleDefaults {
	p := theme.Colors
	rounded := lipgloss.RoundedBorder()

	switch kind {
	case "Header":
		return roleDefaults{background: p.Header, foreground: p.HeaderText}
	case "Button":
		return roleDefaults{background: p.Button, foreground: p.ButtonText, border: &rounded}
	case "ScrollPane":
		return roleDefaults{background: p.Chrome, foreground: p.Border, border: &rounded}
	case "TextArea":
		return roleDefaults{background: p.CodeBackground, foreground: p.CodeForeground}
	case "Console":
		return roleDefaults{background: p.ConsoleBackground, foreground: p.ConsoleForeground}
	case "ErrorTable":
		return roleDefaults{background: p.ErrorBackground, foreground: p.ErrorText}
	case "StatusBar":
		return roleDefaults{background: p.Chrome, foreground: p.Muted}
	default:
		return roleDefaults{background: p.Chrome, foreground: p.ChromeText}
	}
}
