package recolor

import (
	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/widget"
)

// Stats counts what a Recolor call did
type Stats struct {
	Visited  int
	Painted  int
	Excluded int
}

// Add accumulates other into s
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Visited:  s.Visited + other.Visited,
		Painted:  s.Painted + other.Painted,
		Excluded: s.Excluded + other.Excluded,
	}
}

// Recolor walks root depth-first in pre-order and paints every widget that
// exclude does not protect: background c, opaque, no border, contrast
// foreground and a style lock. Excluded widgets are left as they are but
// their children are still visited. Recolor never repaints.
func Recolor(root widget.Widget, c color.Color, exclude ExcludeFunc) Stats {
	if exclude == nil {
		exclude = NoExclusion
	}

	fg := color.ContrastForeground(c)
	lock := widget.Lock{Background: c, Foreground: fg, HasForeground: true}

	var stats Stats
	widget.Walk(root, func(w widget.Widget) bool {
		stats.Visited++
		if exclude(w) {
			stats.Excluded++
			return true
		}

		paint(w, c, fg, lock)
		stats.Painted++
		return true
	})
	return stats
}

func paint(w widget.Widget, bg, fg color.Color, lock widget.Lock) {
	w.SetBackground(bg)
	w.SetOpaque(true)
	w.SetBorder(nil)
	w.SetForeground(fg)
	widget.ApplyLock(w, lock)
}

// PaintViewport gives a scroll container the same fill as the surface it
// wraps. A nil viewport is ignored.
func PaintViewport(viewport widget.Widget, c color.Color) {
	if viewport == nil {
		return
	}
	viewport.SetOpaque(true)
	viewport.SetBackground(c)

	lock, ok := widget.LockOf(viewport)
	if !ok {
		lock = widget.Lock{}
	}
	lock.Background = c
	widget.ApplyLock(viewport, lock)
}
