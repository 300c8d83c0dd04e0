package markup

import "strings"

var placeholderStripper = strings.NewReplacer(
	string(literalNewlinePlaceholder), "",
	string(breakPlaceholder), "",
)

var htmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// prepareBreaks strips stray placeholder runes, then maps "\\n" to a
// literal "\n" and "\n" to the break placeholder.
func prepareBreaks(field string) string {
	s := placeholderStripper.Replace(field)
	s = strings.ReplaceAll(s, `\\n`, string(literalNewlinePlaceholder))
	s = strings.ReplaceAll(s, `\n`, string(breakPlaceholder))
	return strings.ReplaceAll(s, string(literalNewlinePlaceholder), `\n`)
}

// RenderHTML converts a markup field into an HTML fragment.
//
// Angle brackets in the text are escaped; the only tags in the output are
// the <span> and <br> elements produced from markup, and every span opened
// in a field is closed in that field. Malformed markup is reported through
// the returned diagnostics; the fragment is produced regardless.
func RenderHTML(field string) (string, []*MarkupError) {
	tokens, diags := resolve(Lex(prepareBreaks(field)))

	var w htmlWriter
	for _, t := range tokens {
		switch t.Kind {
		case Text:
			w.text(htmlEscaper.Replace(t.Value))
		case EscapedStar:
			w.text("*")
		case Break:
			w.raw("<br>")
		case Bold:
			w.toggle(style{kind: Bold})
		case Italic:
			w.toggle(style{kind: Italic})
		case ColorOpen:
			w.push(style{kind: ColorOpen, color: t.Value})
		case ColorClose:
			w.popColor()
		}
	}
	return w.finish(), diags
}

// style is one active inline style.
type style struct {
	kind  Kind // Bold, Italic or ColorOpen
	color string
}

func (s style) openTag() string {
	switch s.kind {
	case Bold:
		return `<span class="bold">`
	case Italic:
		return `<span class="italic">`
	default:
		return `<span style="color:` + s.color + `">`
	}
}

// htmlWriter emits spans from a logical list of active styles. Tags are
// opened lazily before content and closed in stack order, so overlapping
// markup such as "**a *b** c*" is split into properly nested spans.
type htmlWriter struct {
	b      strings.Builder
	active []style // logical styles, in the order they were turned on
	open   []style // spans physically open in b
}

func (w *htmlWriter) toggle(s style) {
	for i := len(w.active) - 1; i >= 0; i-- {
		if w.active[i].kind == s.kind {
			w.active = append(w.active[:i:i], w.active[i+1:]...)
			return
		}
	}
	w.active = append(w.active, s)
}

func (w *htmlWriter) push(s style) {
	w.active = append(w.active, s)
}

func (w *htmlWriter) popColor() {
	for i := len(w.active) - 1; i >= 0; i-- {
		if w.active[i].kind == ColorOpen {
			w.active = append(w.active[:i:i], w.active[i+1:]...)
			return
		}
	}
}

func (w *htmlWriter) text(s string) {
	if s == "" {
		return
	}
	w.sync()
	w.b.WriteString(s)
}

func (w *htmlWriter) raw(s string) {
	w.sync()
	w.b.WriteString(s)
}

// sync makes the physically open spans match the active styles, closing
// down to the longest common prefix and reopening the remainder.
func (w *htmlWriter) sync() {
	common := 0
	for common < len(w.open) && common < len(w.active) && w.open[common] == w.active[common] {
		common++
	}
	for i := len(w.open); i > common; i-- {
		w.b.WriteString("</span>")
	}
	w.open = append(w.open[:common], w.active[common:]...)
	for _, s := range w.active[common:] {
		w.b.WriteString(s.openTag())
	}
}

func (w *htmlWriter) finish() string {
	for range w.open {
		w.b.WriteString("</span>")
	}
	w.open = nil
	return w.b.String()
}
