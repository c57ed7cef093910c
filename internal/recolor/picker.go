package recolor

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/widget"
)

// Result describes one applied zone change
type Result struct {
	Zone       Zone
	Background color.Color
	Foreground color.Color
	Stats      Stats

	// Written holds the preference entries set for this change
	Written map[string]string

	// SaveErr is non-nil when the preferences could not be made durable.
	// The widgets are recolored regardless.
	SaveErr error
}

// Saved reports whether the change reached durable storage
func (r Result) Saved() bool {
	return r.SaveErr == nil
}

// Picker runs the zone/color interaction and applies its outcome
type Picker struct {
	host     Host
	resolver *Resolver
	prefs    Preferences
	notifier Notifier
	logger   *log.Logger

	// Initial is the color the chooser opens with
	Initial color.Color
}

// NewPicker creates a picker. notifier and logger may be nil.
func NewPicker(host Host, prefs Preferences, notifier Notifier, logger *log.Logger) *Picker {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Picker{
		host:     host,
		resolver: NewResolver(host),
		prefs:    prefs,
		notifier: notifier,
		logger:   logger,
		Initial:  color.White,
	}
}

// Resolver returns the zone resolver bound to the picker's host
func (p *Picker) Resolver() *Resolver {
	return p.resolver
}

// Run asks for a zone then a color. Dismissing either dialog changes nothing
// and returns false.
func (p *Picker) Run(d Dialog) (Result, bool) {
	zone, ok := d.ChooseZone(Zones())
	if !ok {
		p.logger.Debug("Theme picker dismissed at zone selection")
		return Result{}, false
	}

	c, ok := d.ChooseColor(ColorDialogTitle(zone), p.Initial)
	if !ok {
		p.logger.Debug("Theme picker dismissed at color selection", "zone", zone)
		return Result{}, false
	}

	return p.Apply(zone, c), true
}

// ColorDialogTitle is the title of the color chooser for zone
func ColorDialogTitle(zone Zone) string {
	return "Customize " + zone.String()
}

// Apply persists c for zone, recolors the zone and requests a redraw.
// A failed save is reported through the notifier and does not prevent
// the recolor.
func (p *Picker) Apply(zone Zone, c color.Color) Result {
	desc := p.resolver.Resolve(zone)
	result := Result{
		Zone:       zone,
		Background: c,
		Foreground: color.ContrastForeground(c),
	}

	result.Written, result.SaveErr = p.persist(desc, c)
	if result.SaveErr != nil {
		p.logger.Warn("Failed to save preferences", "zone", zone.Short(), "error", result.SaveErr)
		p.notifier.Notify(fmt.Sprintf("%s color applied but not saved: %v", zone, result.SaveErr))
	}

	result.Stats = Paint(desc, c, p.exclusion(desc))
	p.redraw(desc)

	p.logger.Info("Applied zone color",
		"zone", zone.Short(),
		"hex", c.Hex(),
		"foreground", result.Foreground.Hex(),
		"painted", result.Stats.Painted,
		"excluded", result.Stats.Excluded,
	)
	return result
}

// Restore recolors zone from a persisted value without writing preferences
// or requesting a redraw
func (p *Picker) Restore(zone Zone, c color.Color) Stats {
	desc := p.resolver.Resolve(zone)
	return Paint(desc, c, p.exclusion(desc))
}

// Paint recolors every root of desc and, when present, its viewport
func Paint(desc Descriptor, c color.Color, exclude ExcludeFunc) Stats {
	var stats Stats
	for _, root := range desc.Roots {
		stats = stats.Add(Recolor(root, c, exclude))
	}
	PaintViewport(desc.Viewport, c)
	return stats
}

func (p *Picker) exclusion(desc Descriptor) ExcludeFunc {
	if !desc.Exclude {
		return NoExclusion
	}
	return PolicyForHost(p.host).Func()
}

// persist sets every key of the zone before the single save
func (p *Picker) persist(desc Descriptor, c color.Color) (map[string]string, error) {
	written := map[string]string{desc.BackgroundKey: c.Hex()}
	if desc.ForegroundKey != "" {
		written[desc.ForegroundKey] = color.ContrastForeground(c).Hex()
	}

	for key, value := range written {
		p.prefs.Set(key, value)
	}

	if err := p.prefs.Save(); err != nil {
		return written, fmt.Errorf("failed to save preferences: %w", err)
	}
	return written, nil
}

// redraw revalidates and repaints the zone, then repaints the code and
// console surfaces whose scroll chrome may overlap the outer zone
func (p *Picker) redraw(desc Descriptor) {
	for _, root := range desc.Roots {
		p.host.Revalidate(root)
		p.host.Repaint(root)
	}

	for _, w := range []widget.Widget{p.host.CodeSurface(), p.host.ConsoleSurface()} {
		if w != nil {
			p.host.Repaint(w)
		}
	}

	if desc.Zone == ZoneOuter {
		p.host.RebuildHeader()
	}
	p.host.ReapplyPreferences()
}
