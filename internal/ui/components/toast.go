package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/styles"
)

const toastSpring = "toast"

// NotificationType represents different types of notifications
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationSuccess
	NotificationWarning
	NotificationError
)

// ToastTickMsg advances the toast animation
type ToastTickMsg struct {
	seq int
}

// Toast is a single notification that slides in from the right edge and
// slides back out after its duration
type Toast struct {
	anim    *styles.AnimationManager
	palette styles.ColorPalette

	message  string
	kind     NotificationType
	width    int
	duration time.Duration
	shownAt  time.Time
	visible  bool
	hiding   bool
	animate  bool
	seq      int

	now func() time.Time
}

// NewToast creates a hidden toast
func NewToast(palette styles.ColorPalette, animate bool) *Toast {
	return &Toast{
		anim:     styles.NewAnimationManager(60),
		palette:  palette,
		duration: 4 * time.Second,
		animate:  animate,
		now:      time.Now,
	}
}

// SetWidth sets the width the toast slides across
func (t *Toast) SetWidth(width int) {
	t.width = width
}

// SetPalette changes the colors used for new and visible toasts
func (t *Toast) SetPalette(palette styles.ColorPalette) {
	t.palette = palette
}

// SetDuration changes how long a toast stays before hiding
func (t *Toast) SetDuration(d time.Duration) {
	t.duration = d
}

// Show displays message and starts the animation
func (t *Toast) Show(message string, kind NotificationType) tea.Cmd {
	t.message = message
	t.kind = kind
	t.visible = true
	t.hiding = false
	t.shownAt = t.now()
	t.seq++

	from := float64(t.width)
	if !t.animate {
		from = 0
	}
	t.anim.CreateSpring(toastSpring, from, 0, 8.0, 0.8)
	return t.tick()
}

func (t *Toast) tick() tea.Cmd {
	seq := t.seq
	interval := time.Second / time.Duration(t.anim.FPS())
	if !t.animate {
		interval = 250 * time.Millisecond
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ToastTickMsg{seq: seq}
	})
}

// Update handles animation ticks
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(ToastTickMsg)
	if !ok || tick.seq != t.seq || !t.visible {
		return nil
	}

	if t.animate {
		t.anim.Step(toastSpring)
	}

	if !t.hiding && t.now().Sub(t.shownAt) >= t.duration {
		t.hiding = true
		if !t.animate {
			t.dismiss()
			return nil
		}
		t.anim.Retarget(toastSpring, float64(t.width))
	}

	if t.hiding && t.anim.Settled(toastSpring) {
		t.dismiss()
		return nil
	}
	return t.tick()
}

// Dismiss hides the toast immediately
func (t *Toast) Dismiss() {
	t.dismiss()
}

func (t *Toast) dismiss() {
	t.visible = false
	t.hiding = false
	t.anim.Remove(toastSpring)
}

// Visible reports whether the toast is on screen
func (t *Toast) Visible() bool {
	return t.visible
}

// Message returns the current message
func (t *Toast) Message() string {
	return t.message
}

// Kind returns the current notification type
func (t *Toast) Kind() NotificationType {
	return t.kind
}

// Offset is how many cells the toast is pushed right of its resting place
func (t *Toast) Offset() int {
	off := int(t.anim.Position(toastSpring) + 0.5)
	if off < 0 {
		off = 0
	}
	return off
}

// View renders the toast line
func (t *Toast) View() string {
	if !t.visible {
		return ""
	}

	bg := t.accent()
	box := lipgloss.NewStyle().
		Background(bg.Lipgloss()).
		Foreground(color.ContrastForeground(bg).Lipgloss()).
		Padding(0, 1).
		Render(t.icon() + " " + t.message)

	boxW := lipgloss.Width(box)
	lead := t.width - boxW + t.Offset()
	if lead < 0 {
		lead = 0
	}
	line := lipgloss.NewStyle().PaddingLeft(lead).Render(box)
	if t.width > 0 {
		line = ansi.Truncate(line, t.width, "")
	}
	return line
}

func (t *Toast) accent() color.Color {
	switch t.kind {
	case NotificationSuccess:
		return t.palette.Success
	case NotificationWarning:
		return t.palette.Warning
	case NotificationError:
		return t.palette.Error
	default:
		return t.palette.Header
	}
}

func (t *Toast) icon() string {
	switch t.kind {
	case NotificationSuccess:
		return "✓"
	case NotificationWarning:
		return "!"
	case NotificationError:
		return "✗"
	default:
		return "•"
	}
}
