package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/john/tinter/internal/ui/styles"
	"github.com/john/tinter/internal/ui/widget"
)

// DefaultSketch is shown when no sketch file is configured
const DefaultSketch = `void setup() {
  size(640, 360);
  background(20);
}

void draw() {
  float r = map(mouseX, 0, width, 10, 120);
  fill(255, 0, 128);
  ellipse(width / 2, height / 2, r, r);
}`

// CodeView renders the sketch source on the code surface
type CodeView struct {
	source      string
	language    string
	text        *styles.TextFormatter
	lineNumbers bool
	offset      int
}

// NewCodeView creates a new code view. An empty language is detected from
// the source.
func NewCodeView(source, language string, text *styles.TextFormatter) *CodeView {
	cv := &CodeView{text: text, lineNumbers: true}
	cv.SetSource(source, language)
	return cv
}

// SetSource replaces the displayed source
func (cv *CodeView) SetSource(source, language string) {
	if language == "" {
		language = styles.DetectLanguage(source)
	}
	cv.source = source
	cv.language = language
	cv.offset = 0
}

// Source returns the displayed source
func (cv *CodeView) Source() string {
	return cv.source
}

// Language returns the lexer used for highlighting
func (cv *CodeView) Language() string {
	return cv.language
}

// ToggleLineNumbers toggles the line number gutter
func (cv *CodeView) ToggleLineNumbers() {
	cv.lineNumbers = !cv.lineNumbers
}

// ScrollTo sets the first visible line
func (cv *CodeView) ScrollTo(line int) {
	total := strings.Count(cv.source, "\n") + 1
	if line >= total {
		line = total - 1
	}
	if line < 0 {
		line = 0
	}
	cv.offset = line
}

// Render is a ContentFunc for the code surface. The widget's background
// becomes the highlighting background.
func (cv *CodeView) Render(n *widget.Node, width, height int) string {
	highlighted, err := cv.text.HighlightCode(cv.source, cv.language, n.Background())
	if err != nil {
		highlighted = cv.source
	}

	lines := strings.Split(strings.TrimRight(highlighted, "\n"), "\n")
	if cv.offset < len(lines) {
		lines = lines[cv.offset:]
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}

	if !cv.lineNumbers {
		return strings.Join(lines, "\n")
	}

	gutter := lipgloss.NewStyle().Foreground(n.Foreground().Lipgloss()).Faint(true)
	if n.Opaque() {
		gutter = gutter.Background(n.Background().Lipgloss())
	}
	digits := len(fmt.Sprint(cv.offset + len(lines)))
	for i, line := range lines {
		lines[i] = gutter.Render(fmt.Sprintf("%*d ", digits, cv.offset+i+1)) + line
	}
	return strings.Join(lines, "\n")
}
