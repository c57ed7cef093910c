package widget

import (
	"fmt"
	"strings"

	"github.com/john/tinter/internal/ui/color"
)

// StyleLockKey is the style property a look-and-feel refresh consults
// before resetting a widget to theme defaults
const StyleLockKey = "tinter.style"

// Lock is a per-widget color override
type Lock struct {
	Background    color.Color
	Foreground    color.Color
	HasForeground bool
}

// String renders the lock in "background: #rrggbb; foreground: #rrggbb" form
func (l Lock) String() string {
	s := "background: " + l.Background.Hex()
	if l.HasForeground {
		s += "; foreground: " + l.Foreground.Hex()
	}
	return s
}

// ParseLock parses the value written by Lock.String. Unknown keys are ignored.
func ParseLock(s string) (Lock, error) {
	var lock Lock
	hasBackground := false

	for _, decl := range strings.Split(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}

		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			return Lock{}, fmt.Errorf("malformed style declaration %q", decl)
		}

		switch strings.TrimSpace(key) {
		case "background":
			c, err := color.ParseHex(value)
			if err != nil {
				return Lock{}, fmt.Errorf("failed to parse lock background: %w", err)
			}
			lock.Background = c
			hasBackground = true
		case "foreground":
			c, err := color.ParseHex(value)
			if err != nil {
				return Lock{}, fmt.Errorf("failed to parse lock foreground: %w", err)
			}
			lock.Foreground = c
			lock.HasForeground = true
		}
	}

	if !hasBackground {
		return Lock{}, fmt.Errorf("style lock %q has no background", s)
	}
	return lock, nil
}

// LockOf returns the parsed lock installed on w, if any
func LockOf(w Widget) (Lock, bool) {
	raw, ok := w.StyleProperty(StyleLockKey)
	if !ok || raw == "" {
		return Lock{}, false
	}
	lock, err := ParseLock(raw)
	if err != nil {
		return Lock{}, false
	}
	return lock, true
}

// ApplyLock installs lock on w
func ApplyLock(w Widget, lock Lock) {
	w.PutStyleProperty(StyleLockKey, lock.String())
}
