package index

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for parsing, importing and searching.
var (
	ErrMissingLocation   = errors.New("missing location")
	ErrMissingKeyword    = errors.New("missing keyword")
	ErrAmbiguousLocation = errors.New("location splits the line into more than two parts")
	ErrImportFormat      = errors.New("invalid tabular import")
	ErrSearchScope       = errors.New("search scope needs a comment column")
	ErrUnknownScope      = errors.New("unknown search scope")
	ErrEmptyQuery        = errors.New("empty search query")
)

// MissingLocationError reports a line with no digits.digits location.
// It aborts the whole file.
type MissingLocationError struct {
	Line int
	Text string
}

func (e *MissingLocationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v (expected digits.digits): %q", e.Line, ErrMissingLocation, e.Text)
	}
	return fmt.Sprintf("%v (expected digits.digits): %q", ErrMissingLocation, e.Text)
}

func (e *MissingLocationError) Unwrap() error { return ErrMissingLocation }

// ParseError reports a line that has a location but no usable keyword.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ImportFormatError reports a tabular file whose header lacks required
// columns.
type ImportFormatError struct {
	Missing []string
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("%v: missing %s column(s) in header row", ErrImportFormat, strings.Join(e.Missing, ", "))
}

func (e *ImportFormatError) Unwrap() error { return ErrImportFormat }

// withLine sets the line number on parse errors that carry one.
func withLine(err error, line int) error {
	var mle *MissingLocationError
	if errors.As(err, &mle) {
		mle.Line = line
		return mle
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Line = line
		return pe
	}
	return err
}
