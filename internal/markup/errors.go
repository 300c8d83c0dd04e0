package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMarkup is the sentinel wrapped by every MarkupError.
var ErrMarkup = errors.New("malformed markup")

// Diagnostic reasons.
const (
	ReasonUnclosedColor   = "unclosed color span"
	ReasonInvalidColor    = "invalid color name"
	ReasonStrayMarker     = "stray color marker"
	ReasonUnmatchedBold   = "unmatched bold marker"
	ReasonUnmatchedItalic = "unmatched italic marker"
)

// MarkupError reports markup that could not be rendered as written.
// Rendering continues past it; the error is a diagnostic, never fatal.
type MarkupError struct {
	Line   int    // source line of the entry, 0 when unknown
	Field  string // "keyword" or "comment", empty when rendered standalone
	Offset int    // byte offset of the marker within the field
	Marker string // the offending marker as written
	Reason string
}

func (e *MarkupError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s %q at offset %d", e.Reason, e.Marker, e.Offset)
	return b.String()
}

func (e *MarkupError) Unwrap() error { return ErrMarkup }

// Annotate sets the source line and field on every diagnostic and returns
// the same slice.
func Annotate(diags []*MarkupError, line int, field string) []*MarkupError {
	for _, d := range diags {
		d.Line = line
		d.Field = field
	}
	return diags
}
