package components

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/john/tinter/internal/recolor"
	"github.com/john/tinter/internal/ui/color"
)

// PickerStage is where the embedded theme picker is
type PickerStage int

const (
	PickerZone PickerStage = iota
	PickerColor
	PickerDone
	PickerCancelled
)

// String returns the string representation of PickerStage
func (s PickerStage) String() string {
	switch s {
	case PickerZone:
		return "zone"
	case PickerColor:
		return "color"
	case PickerDone:
		return "done"
	case PickerCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ValidateHex is the hex input validator
func ValidateHex(s string) error {
	if _, err := color.ParseHex(s); err != nil {
		return errors.New("enter a color like #ff0080")
	}
	return nil
}

// Swatch renders a preview of hex with its contrast foreground
func Swatch(hex string) string {
	c, err := color.ParseHex(hex)
	if err != nil {
		return "no preview"
	}
	fg := color.ContrastForeground(c)
	block := lipgloss.NewStyle().
		Background(c.Lipgloss()).
		Foreground(fg.Lipgloss()).
		Padding(0, 2).
		Render("Aa " + c.Hex())
	return fmt.Sprintf("%s  %s text, contrast %.1f:1", block, color.Classify(c), color.ContrastRatio(fg, c))
}

// NewZoneForm builds the zone selection form writing into zone
func NewZoneForm(zone *recolor.Zone) *huh.Form {
	options := make([]huh.Option[recolor.Zone], 0, len(recolor.Zones()))
	for _, z := range recolor.Zones() {
		options = append(options, huh.NewOption(z.String(), z))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[recolor.Zone]().
				Title("Theme Customizer").
				Description("Which element would you like to change?").
				Options(options...).
				Value(zone),
		),
	)
}

// NewColorForm builds the color input form writing into hex
func NewColorForm(title string, hex *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("#rrggbb").
				Value(hex).
				Validate(ValidateHex).
				DescriptionFunc(func() string {
					return Swatch(*hex)
				}, hex),
		),
	)
}

// PickerFlow is the two step zone then color picker embedded in the editor
type PickerFlow struct {
	form  *huh.Form
	stage PickerStage
	zone  recolor.Zone
	hex   string
	width int
}

// NewPickerFlow creates a picker whose color step starts at initial
func NewPickerFlow(initial color.Color, width int) *PickerFlow {
	pf := &PickerFlow{
		stage: PickerZone,
		zone:  recolor.ZoneOuter,
		hex:   initial.Hex(),
		width: width,
	}
	pf.form = pf.styled(NewZoneForm(&pf.zone))
	return pf
}

func (pf *PickerFlow) styled(f *huh.Form) *huh.Form {
	f = f.WithTheme(huh.ThemeCharm()).WithShowHelp(true)
	if pf.width > 0 {
		f = f.WithWidth(pf.width)
	}
	return f
}

// Init initializes the current form
func (pf *PickerFlow) Init() tea.Cmd {
	return pf.form.Init()
}

// Update forwards msg to the current form and advances when it completes.
// esc cancels at any step.
func (pf *PickerFlow) Update(msg tea.Msg) tea.Cmd {
	if pf.Finished() {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		pf.stage = PickerCancelled
		return nil
	}

	form, cmd := pf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		pf.form = f
	}

	switch pf.form.State {
	case huh.StateAborted:
		pf.stage = PickerCancelled
		return nil
	case huh.StateCompleted:
		return pf.advance()
	}
	return cmd
}

func (pf *PickerFlow) advance() tea.Cmd {
	switch pf.stage {
	case PickerZone:
		pf.stage = PickerColor
		pf.form = pf.styled(NewColorForm(recolor.ColorDialogTitle(pf.zone), &pf.hex))
		return pf.form.Init()
	case PickerColor:
		if _, err := color.ParseHex(pf.hex); err != nil {
			pf.stage = PickerCancelled
			return nil
		}
		pf.stage = PickerDone
	}
	return nil
}

// Stage returns the current step
func (pf *PickerFlow) Stage() PickerStage {
	return pf.stage
}

// Finished reports whether the picker is done or cancelled
func (pf *PickerFlow) Finished() bool {
	return pf.stage == PickerDone || pf.stage == PickerCancelled
}

// Zone returns the chosen zone
func (pf *PickerFlow) Zone() recolor.Zone {
	return pf.zone
}

// Color returns the chosen color
func (pf *PickerFlow) Color() (color.Color, error) {
	return color.ParseHex(pf.hex)
}

// View renders the current form
func (pf *PickerFlow) View() string {
	if pf.Finished() {
		return ""
	}
	return pf.form.View()
}

// FormDialog runs the picker forms directly on the terminal. It implements
// recolor.Dialog for the standalone pick command.
type FormDialog struct {
	Accessible bool
}

// ChooseZone implements recolor.Dialog
func (d FormDialog) ChooseZone(zones []recolor.Zone) (recolor.Zone, bool) {
	zone := recolor.ZoneOuter
	if len(zones) > 0 {
		zone = zones[0]
	}
	if err := d.run(NewZoneForm(&zone)); err != nil {
		return zone, false
	}
	return zone, true
}

// ChooseColor implements recolor.Dialog
func (d FormDialog) ChooseColor(title string, initial color.Color) (color.Color, bool) {
	hex := initial.Hex()
	if err := d.run(NewColorForm(title, &hex)); err != nil {
		return initial, false
	}
	c, err := color.ParseHex(strings.TrimSpace(hex))
	if err != nil {
		return initial, false
	}
	return c, true
}

func (d FormDialog) run(f *huh.Form) error {
	err := f.WithTheme(huh.ThemeCharm()).WithAccessible(d.Accessible).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to run picker form: %w", err)
	}
	return nil
}
