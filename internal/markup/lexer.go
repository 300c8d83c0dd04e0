package markup

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Private Use Area runes used as placeholders during rendering.
// Input containing them is stripped before substitution.
const (
	literalNewlinePlaceholder = '\uE000'
	breakPlaceholder          = '\uE002'
)

const colorMarker = ";;"

// colorNamePattern accepts CSS color keywords, hex values and functional
// notations such as rgb(1,2,3) or hsl(10,50%,50%).
var colorNamePattern = regexp.MustCompile(`^#?[A-Za-z0-9(),.%-]+$`)

// ValidColor reports whether name is accepted as a color span name.
func ValidColor(name string) bool {
	return colorNamePattern.MatchString(name)
}

// Kind identifies a token produced by Lex.
type Kind int

const (
	Text Kind = iota
	Break
	ColorOpen
	ColorClose
	Bold
	Italic
	EscapedStar
	Stray
)

var kindNames = [...]string{
	Text:        "Text",
	Break:       "Break",
	ColorOpen:   "ColorOpen",
	ColorClose:  "ColorClose",
	Bold:        "Bold",
	Italic:      "Italic",
	EscapedStar: "EscapedStar",
	Stray:       "Stray",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token is one lexical unit of a markup string.
type Token struct {
	Kind   Kind
	Value  string // text for Text, color name for ColorOpen
	Raw    string // source text the token was read from
	Offset int    // byte offset of Raw in the input
}

// lexState is the tokenizer state. Bold and italic are toggles resolved
// after lexing, so only color spans need explicit states.
type lexState int

const (
	statePlain lexState = iota
	stateColorBody
)

// Lex splits s into tokens in a single pass.
//
// A line break is recognized only as the break placeholder produced by
// the renderers; callers lexing raw text see "\n" as plain text.
func Lex(s string) []Token {
	l := lexer{src: s, noTermFrom: len(s) + 1}
	l.run()
	return l.tokens
}

type lexer struct {
	src    string
	tokens []Token
	state  lexState
	// noTermFrom is the lowest offset known to have no name terminator
	// after it. Names are scanned left to right, so one failed scan
	// answers every later one.
	noTermFrom int
	textStart  int
	text       strings.Builder
}

func (l *lexer) run() {
	i := 0
	for i < len(l.src) {
		rest := l.src[i:]
		switch {
		case strings.HasPrefix(rest, colorMarker):
			i = l.lexColor(i)
		case rest[0] == '\\' && len(rest) > 1 && rest[1] == '*' && !strings.HasPrefix(rest[2:], "*"):
			l.emit(Token{Kind: EscapedStar, Raw: `\*`, Offset: i})
			i += 2
		case strings.HasPrefix(rest, "**"):
			l.emit(Token{Kind: Bold, Raw: "**", Offset: i})
			i += 2
		case rest[0] == '*':
			l.emit(Token{Kind: Italic, Raw: "*", Offset: i})
			i++
		default:
			r, size := utf8.DecodeRuneInString(rest)
			if r == breakPlaceholder {
				l.emit(Token{Kind: Break, Raw: rest[:size], Offset: i})
			} else {
				if l.text.Len() == 0 {
					l.textStart = i
				}
				l.text.WriteString(rest[:size])
			}
			i += size
		}
	}
	l.flush()
}

// lexColor handles a ";;" marker at offset i and returns the next offset.
func (l *lexer) lexColor(i int) int {
	if l.state == stateColorBody {
		l.emit(Token{Kind: ColorClose, Raw: colorMarker, Offset: i})
		l.state = statePlain
		return i + 2
	}

	// The name runs to the next whitespace (consumed) or line break (kept).
	start := i + 2
	j := start
	terminated := false
	end := j
	for j < len(l.src) {
		if j >= l.noTermFrom {
			j = len(l.src)
			break
		}
		r, size := utf8.DecodeRuneInString(l.src[j:])
		if r == breakPlaceholder {
			terminated, end = true, j
			break
		}
		if unicode.IsSpace(r) {
			terminated, end = true, j+size
			break
		}
		j += size
	}

	if !terminated {
		l.noTermFrom = min(l.noTermFrom, start)
	}

	name := l.src[start:j]
	if name == "" || !terminated {
		l.emit(Token{Kind: Stray, Raw: colorMarker, Offset: i})
		return start
	}
	l.emit(Token{Kind: ColorOpen, Value: name, Raw: l.src[i:end], Offset: i})
	l.state = stateColorBody
	return end
}

func (l *lexer) emit(t Token) {
	l.flush()
	l.tokens = append(l.tokens, t)
}

func (l *lexer) flush() {
	if l.text.Len() == 0 {
		return
	}
	s := l.text.String()
	l.tokens = append(l.tokens, Token{Kind: Text, Value: s, Raw: s, Offset: l.textStart})
	l.text.Reset()
}

// resolve pairs openers with closers. Unusable markers are dropped or
// turned into literal text, and each one that deserves attention is
// reported.
func resolve(tokens []Token) ([]Token, []*MarkupError) {
	var diags []*MarkupError
	drop := make([]bool, len(tokens))

	report := func(t Token, reason string) {
		diags = append(diags, &MarkupError{Offset: t.Offset, Marker: t.Raw, Reason: reason})
	}

	// Color spans: opener index waiting for its closer, -1 when none.
	open := -1
	for i, t := range tokens {
		switch t.Kind {
		case ColorOpen:
			open = i
		case ColorClose:
			if open >= 0 && !colorNamePattern.MatchString(tokens[open].Value) {
				drop[open], drop[i] = true, true
				report(tokens[open], ReasonInvalidColor)
			}
			open = -1
		case Stray:
			drop[i] = true
			report(t, ReasonStrayMarker)
		}
	}
	if open >= 0 {
		drop[open] = true
		report(tokens[open], ReasonUnclosedColor)
	}

	var bolds, italics []int
	for i, t := range tokens {
		switch t.Kind {
		case Bold:
			bolds = append(bolds, i)
		case Italic:
			italics = append(italics, i)
		}
	}

	literal := make(map[int]bool)
	if len(bolds)%2 == 1 {
		last := bolds[len(bolds)-1]
		literal[last] = true
		report(tokens[last], ReasonUnmatchedBold)
	}
	switch {
	case len(italics) == 1:
		// A lone asterisk is ordinary text.
		literal[italics[0]] = true
	case len(italics)%2 == 1:
		last := italics[len(italics)-1]
		literal[last] = true
		report(tokens[last], ReasonUnmatchedItalic)
	}

	out := make([]Token, 0, len(tokens))
	for i, t := range tokens {
		if drop[i] {
			continue
		}
		if literal[i] {
			t = Token{Kind: Text, Value: t.Raw, Raw: t.Raw, Offset: t.Offset}
		}
		out = append(out, t)
	}

	sortDiagnostics(diags)
	return out, diags
}

// sortDiagnostics orders diagnostics by offset so reports read left to
// right.
func sortDiagnostics(diags []*MarkupError) {
	slices.SortStableFunc(diags, func(a, b *MarkupError) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
}
