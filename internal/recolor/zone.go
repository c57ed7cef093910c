package recolor

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/john/tinter/internal/ui/widget"
)

// Zone is a named region of the editor that owns widgets and preference keys
type Zone int

const (
	ZoneOuter Zone = iota
	ZoneInner
	ZoneConsole
)

// Preference keys written by the zones
const (
	KeyHeaderColor   = "header.color"
	KeyEditorBgColor = "editor.bgcolor"
	KeyEditorFgColor = "editor.fgcolor"
	KeyConsoleColor  = "console.color"
)

// Zones returns every zone in dialog order
func Zones() []Zone {
	return []Zone{ZoneOuter, ZoneInner, ZoneConsole}
}

// String returns the name shown in the picker dialog
func (z Zone) String() string {
	switch z {
	case ZoneOuter:
		return "Outer Theme"
	case ZoneInner:
		return "Inner Coding Area"
	case ZoneConsole:
		return "Console"
	default:
		return fmt.Sprintf("Zone(%d)", int(z))
	}
}

// Short returns the command-line name of the zone
func (z Zone) Short() string {
	switch z {
	case ZoneOuter:
		return "outer"
	case ZoneInner:
		return "inner"
	case ZoneConsole:
		return "console"
	default:
		return "unknown"
	}
}

// Valid reports whether z is one of the defined zones
func (z Zone) Valid() bool {
	return z >= ZoneOuter && z <= ZoneConsole
}

// UnknownZoneError is returned by ParseZone for unrecognized names
type UnknownZoneError struct {
	Name       string
	Suggestion string
}

func (e *UnknownZoneError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown zone %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown zone %q", e.Name)
}

// ParseZone accepts a short name ("outer") or a display name ("Outer Theme"),
// case-insensitively
func ParseZone(name string) (Zone, error) {
	needle := strings.ToLower(strings.TrimSpace(name))

	for _, z := range Zones() {
		if needle == z.Short() || needle == strings.ToLower(z.String()) {
			return z, nil
		}
	}

	return 0, &UnknownZoneError{Name: name, Suggestion: suggestZone(needle)}
}

// suggestZone returns the closest short name within an edit distance of 3
func suggestZone(needle string) string {
	best := ""
	bestDistance := 4
	for _, z := range Zones() {
		d := levenshtein.ComputeDistance(needle, z.Short())
		if d < bestDistance {
			best, bestDistance = z.Short(), d
		}
	}
	return best
}

// Descriptor is everything the picker needs to recolor and persist one zone
type Descriptor struct {
	Zone Zone

	// Roots are traversed by the recoloring engine
	Roots []widget.Widget

	// Primary is the surface whose foreground follows the contrast class
	Primary widget.Widget

	// Viewport is the scroll container painting beneath Primary; nil when absent
	Viewport widget.Widget

	BackgroundKey string
	// ForegroundKey is empty when the zone does not persist a foreground
	ForegroundKey string

	Exclude bool
}

// Resolver maps zones onto the host's widget tree
type Resolver struct {
	host Host
}

// NewResolver creates a resolver for host
func NewResolver(host Host) *Resolver {
	return &Resolver{host: host}
}

// Resolve returns the descriptor for z. It panics for a zone outside Zones():
// the set is closed and presented by the dialog itself.
func (r *Resolver) Resolve(z Zone) Descriptor {
	switch z {
	case ZoneOuter:
		root := r.host.WindowRoot()
		return Descriptor{
			Zone:          z,
			Roots:         []widget.Widget{root},
			Primary:       root,
			BackgroundKey: KeyHeaderColor,
			Exclude:       true,
		}
	case ZoneInner:
		code := r.host.CodeSurface()
		return Descriptor{
			Zone:          z,
			Roots:         []widget.Widget{code},
			Primary:       code,
			BackgroundKey: KeyEditorBgColor,
			ForegroundKey: KeyEditorFgColor,
		}
	case ZoneConsole:
		console := r.host.ConsoleSurface()
		d := Descriptor{
			Zone:          z,
			Roots:         []widget.Widget{console},
			Primary:       console,
			BackgroundKey: KeyConsoleColor,
		}
		if parent := widget.ParentOf(r.host.WindowRoot(), console); widget.IsViewport(parent) {
			d.Viewport = parent
		}
		return d
	default:
		panic(fmt.Sprintf("recolor: unknown zone %d", int(z)))
	}
}
