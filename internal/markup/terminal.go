package markup

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ansiColors maps CSS color keywords to terminal palette entries. Hex
// values are passed to lipgloss as-is; other names render uncolored.
var ansiColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"purple":  "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
	"orange":  "208",
}

// TerminalRenderer renders markup fields with ANSI styles for a writer.
type TerminalRenderer struct {
	r *lipgloss.Renderer
}

// NewTerminalRenderer creates a renderer whose color profile is detected
// from w.
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{r: lipgloss.NewRenderer(w)}
}

// Render converts field to styled terminal text. Line breaks become
// newlines and malformed markup is handled as in RenderHTML, without
// diagnostics.
func (t *TerminalRenderer) Render(field string) string {
	tokens, _ := resolve(Lex(prepareBreaks(field)))

	var (
		b      strings.Builder
		bold   bool
		italic bool
		color  string
	)
	for _, tok := range tokens {
		switch tok.Kind {
		case Text:
			b.WriteString(t.style(bold, italic, color).Render(tok.Value))
		case EscapedStar:
			b.WriteString(t.style(bold, italic, color).Render("*"))
		case Break:
			b.WriteByte('\n')
		case Bold:
			bold = !bold
		case Italic:
			italic = !italic
		case ColorOpen:
			color = tok.Value
		case ColorClose:
			color = ""
		}
	}
	return b.String()
}

func (t *TerminalRenderer) style(bold, italic bool, color string) lipgloss.Style {
	s := t.r.NewStyle().Bold(bold).Italic(italic)
	if c := terminalColor(color); c != "" {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}

func terminalColor(name string) string {
	if strings.HasPrefix(name, "#") {
		return name
	}
	return ansiColors[strings.ToLower(name)]
}
