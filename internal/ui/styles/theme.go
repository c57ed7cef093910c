package styles

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"github.com/john/tinter/internal/ui/color"
)

// Theme represents a complete visual theme for the editor shell
type Theme struct {
	Name        string
	DisplayName string
	Description string

	Colors ColorPalette

	IsDark         bool
	IsHighContrast bool
}

// ColorPalette holds the default color of every widget role
type ColorPalette struct {
	// Window chrome: panels, toolbar, status bar
	Chrome     color.Color `json:"chrome"`
	ChromeText color.Color `json:"chrome_text"`

	Header     color.Color `json:"header"`
	HeaderText color.Color `json:"header_text"`

	Button     color.Color `json:"button"`
	ButtonText color.Color `json:"button_text"`

	// Border is the accent drawn around scroll panes and buttons
	Border color.Color `json:"border"`

	CodeBackground color.Color `json:"code_background"`
	CodeForeground color.Color `json:"code_foreground"`

	ConsoleBackground color.Color `json:"console_background"`
	ConsoleForeground color.Color `json:"console_foreground"`

	ErrorBackground color.Color `json:"error_background"`
	ErrorText       color.Color `json:"error_text"`

	Success color.Color `json:"success"`
	Warning color.Color `json:"warning"`
	Error   color.Color `json:"error"`
	Muted   color.Color `json:"muted"`
}

var hex = color.MustParseHex

// Predefined themes
var (
	// CharmLight - light chrome with the purple accent
	CharmLight = Theme{
		Name:        "charm-light",
		DisplayName: "Charm Light",
		Description: "Light chrome with purple accents",
		Colors: ColorPalette{
			Chrome:            hex("#F8FAFC"), // Slate-50
			ChromeText:        hex("#0F172A"), // Slate-900
			Header:            hex("#7C3AED"), // Purple-600
			HeaderText:        hex("#FFFFFF"),
			Button:            hex("#E2E8F0"), // Slate-200
			ButtonText:        hex("#1E293B"), // Slate-800
			Border:            hex("#3B82F6"), // Blue-500
			CodeBackground:    hex("#FFFFFF"),
			CodeForeground:    hex("#1E293B"),
			ConsoleBackground: hex("#F1F5F9"), // Slate-100
			ConsoleForeground: hex("#334155"), // Slate-700
			ErrorBackground:   hex("#FEF2F2"), // Red-50
			ErrorText:         hex("#DC2626"), // Red-600
			Success:           hex("#10B981"),
			Warning:           hex("#F59E0B"),
			Error:             hex("#EF4444"),
			Muted:             hex("#94A3B8"),
		},
	}

	// CharmDark - dark chrome with glowing purple accents
	CharmDark = Theme{
		Name:        "charm-dark",
		DisplayName: "Charm Dark",
		Description: "Dark chrome with glowing purple accents",
		IsDark:      true,
		Colors: ColorPalette{
			Chrome:            hex("#0F172A"), // Slate-900
			ChromeText:        hex("#F8FAFC"), // Slate-50
			Header:            hex("#A855F7"), // Purple-500
			HeaderText:        hex("#0F172A"),
			Button:            hex("#334155"), // Slate-700
			ButtonText:        hex("#CBD5E1"), // Slate-300
			Border:            hex("#60A5FA"), // Blue-400
			CodeBackground:    hex("#1E293B"), // Slate-800
			CodeForeground:    hex("#CBD5E1"),
			ConsoleBackground: hex("#020617"), // Slate-950
			ConsoleForeground: hex("#94A3B8"), // Slate-400
			ErrorBackground:   hex("#450A0A"), // Red-950
			ErrorText:         hex("#F87171"), // Red-400
			Success:           hex("#34D399"),
			Warning:           hex("#FBBF24"),
			Error:             hex("#F87171"),
			Muted:             hex("#64748B"),
		},
	}

	// HighContrast - Accessibility-focused high contrast theme
	HighContrast = Theme{
		Name:           "high-contrast",
		DisplayName:    "High Contrast",
		Description:    "High contrast theme for accessibility",
		IsHighContrast: true,
		Colors: ColorPalette{
			Chrome:            hex("#FFFFFF"),
			ChromeText:        hex("#000000"),
			Header:            hex("#000000"),
			HeaderText:        hex("#FFFFFF"),
			Button:            hex("#FFFFFF"),
			ButtonText:        hex("#000000"),
			Border:            hex("#000000"),
			CodeBackground:    hex("#FFFFFF"),
			CodeForeground:    hex("#000000"),
			ConsoleBackground: hex("#000000"),
			ConsoleForeground: hex("#FFFFFF"),
			ErrorBackground:   hex("#FFFFFF"),
			ErrorText:         hex("#FF0000"),
			Success:           hex("#008000"),
			Warning:           hex("#FF8000"),
			Error:             hex("#FF0000"),
			Muted:             hex("#666666"),
		},
	}
)

// ThemeManager handles theme registration and switching
type ThemeManager struct {
	currentTheme    *Theme
	availableThemes map[string]*Theme
	terminalProfile termenv.Profile
}

// NewThemeManager creates a theme manager with the built-in themes
// registered and a default chosen from the environment
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		availableThemes: make(map[string]*Theme),
		terminalProfile: termenv.ColorProfile(),
	}

	tm.RegisterTheme(&CharmLight)
	tm.RegisterTheme(&CharmDark)
	tm.RegisterTheme(&HighContrast)

	tm.SetDefaultTheme()
	return tm
}

// RegisterTheme registers a new theme
func (tm *ThemeManager) RegisterTheme(theme *Theme) {
	tm.availableThemes[theme.Name] = theme
}

// SetTheme activates a theme by name
func (tm *ThemeManager) SetTheme(name string) error {
	theme, exists := tm.availableThemes[name]
	if !exists {
		return fmt.Errorf("theme '%s' not found", name)
	}
	tm.currentTheme = theme
	return nil
}

// GetCurrentTheme returns the currently active theme
func (tm *ThemeManager) GetCurrentTheme() *Theme {
	return tm.currentTheme
}

// ThemeNames returns the registered theme names, sorted
func (tm *ThemeManager) ThemeNames() []string {
	names := make([]string, 0, len(tm.availableThemes))
	for name := range tm.availableThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetDefaultTheme picks a theme from TINTER_THEME or the terminal
func (tm *ThemeManager) SetDefaultTheme() {
	if preferred := os.Getenv("TINTER_THEME"); preferred != "" {
		if err := tm.SetTheme(preferred); err == nil {
			return
		}
	}

	switch {
	case tm.shouldUseHighContrast():
		tm.currentTheme = &HighContrast
	case tm.shouldUseDarkTheme():
		tm.currentTheme = &CharmDark
	default:
		tm.currentTheme = &CharmLight
	}
}

// shouldUseHighContrast is true on monochrome terminals or when requested
func (tm *ThemeManager) shouldUseHighContrast() bool {
	if tm.terminalProfile == termenv.Ascii {
		return true
	}
	return strings.ToLower(os.Getenv("FORCE_HIGH_CONTRAST")) == "true" ||
		strings.ToLower(os.Getenv("ACCESSIBILITY_HIGH_CONTRAST")) == "true"
}

// shouldUseDarkTheme determines if dark theme should be used
func (tm *ThemeManager) shouldUseDarkTheme() bool {
	colorTerm := strings.ToLower(os.Getenv("COLORFGBG"))
	if strings.Contains(colorTerm, "15;0") || strings.Contains(colorTerm, "7;0") {
		return true // Light text on dark background
	}

	if strings.ToLower(os.Getenv("TINTER_DARK_MODE")) == "true" {
		return true
	}
	return termenv.HasDarkBackground()
}
