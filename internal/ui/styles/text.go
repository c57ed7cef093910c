package styles

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"

	"github.com/john/tinter/internal/ui/color"
)

// TextFormatter renders markdown and highlights code against a given
// background, picking light or dark palettes from its contrast class.
type TextFormatter struct {
	width int

	glamour      *glamour.TermRenderer
	glamourClass color.ContrastClass
	glamourWidth int

	chromaCache map[string]*chroma.Style
}

// NewTextFormatter creates a new text formatter for the given width
func NewTextFormatter(width int) *TextFormatter {
	return &TextFormatter{
		width:       width,
		chromaCache: make(map[string]*chroma.Style),
	}
}

// Resize updates the wrap width used for markdown
func (tf *TextFormatter) Resize(width int) {
	tf.width = width
}

// RenderMarkdown renders markdown for display on bg
func (tf *TextFormatter) RenderMarkdown(markdown string, bg color.Color) (string, error) {
	class := color.Classify(bg)
	width := tf.width - 4
	if width < 20 {
		width = 20
	}

	// The glamour renderer width cannot be changed after creation
	if tf.glamour == nil || tf.glamourClass != class || tf.glamourWidth != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(glamourStyleFor(class)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return markdown, fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		tf.glamour = renderer
		tf.glamourClass = class
		tf.glamourWidth = width
	}

	rendered, err := tf.glamour.Render(markdown)
	if err != nil {
		return markdown, err
	}

	return strings.TrimSpace(rendered), nil
}

func glamourStyleFor(class color.ContrastClass) string {
	if class == color.Light {
		return "light"
	}
	return "dark"
}

// ChromaStyleName returns the highlighting palette readable on bg
func ChromaStyleName(bg color.Color) string {
	if color.Classify(bg) == color.Light {
		return "github"
	}
	return "monokai"
}

// HighlightCode applies syntax highlighting with bg as the code background
func (tf *TextFormatter) HighlightCode(code, language string, bg color.Color) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style, err := tf.chromaStyle(bg)
	if err != nil {
		return code, err
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		return code, fmt.Errorf("terminal formatter not available")
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, err
	}

	var highlighted strings.Builder
	if err := formatter.Format(&highlighted, style, iterator); err != nil {
		return code, err
	}

	return highlighted.String(), nil
}

// chromaStyle derives a style whose background is bg. Results are cached
// per background.
func (tf *TextFormatter) chromaStyle(bg color.Color) (*chroma.Style, error) {
	key := bg.Hex()
	if style, ok := tf.chromaCache[key]; ok {
		return style, nil
	}

	base := styles.Get(ChromaStyleName(bg))
	if base == nil {
		base = styles.Fallback
	}

	style, err := base.Builder().Add(chroma.Background, "bg:"+key).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build code style: %w", err)
	}

	tf.chromaCache[key] = style
	return style, nil
}

// DetectLanguage guesses the lexer name for code, "text" when unknown
func DetectLanguage(code string) string {
	lexer := lexers.Analyse(code)
	if lexer == nil {
		return "text"
	}
	return strings.ToLower(lexer.Config().Name)
}
