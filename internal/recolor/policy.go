package recolor

import (
	"strings"

	"github.com/john/tinter/internal/ui/widget"
)

// ExcludeFunc reports whether a widget must be left untouched
type ExcludeFunc func(w widget.Widget) bool

// DefaultProtectedTypes are type-name fragments of widgets that manage
// their own palette
var DefaultProtectedTypes = []string{"ErrorTable", "TextArea"}

// Policy decides which widgets an outer recolor must skip. Protection is
// per widget: children of a protected widget are still visited.
type Policy struct {
	protected []widget.Widget
	types     []string
}

// NewPolicy protects the given widget references plus DefaultProtectedTypes
func NewPolicy(protected ...widget.Widget) *Policy {
	p := &Policy{types: append([]string(nil), DefaultProtectedTypes...)}
	for _, w := range protected {
		if w != nil {
			p.protected = append(p.protected, w)
		}
	}
	return p
}

// PolicyForHost protects the host's code and console surfaces
func PolicyForHost(host Host) *Policy {
	return NewPolicy(host.CodeSurface(), host.ConsoleSurface())
}

// WithTypes replaces the protected type-name fragments
func (p *Policy) WithTypes(types ...string) *Policy {
	p.types = append([]string(nil), types...)
	return p
}

// Protected reports whether w is one of the protected references or its
// type name contains a protected fragment
func (p *Policy) Protected(w widget.Widget) bool {
	for _, ref := range p.protected {
		if w == ref {
			return true
		}
	}

	name := w.TypeName()
	for _, t := range p.types {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}

// Func returns the policy as an ExcludeFunc
func (p *Policy) Func() ExcludeFunc {
	return p.Protected
}

// NoExclusion protects nothing
func NoExclusion(widget.Widget) bool {
	return false
}
