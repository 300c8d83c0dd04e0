// Package dateutil resolves the date strings used in footers and reports.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used for a bare "auto".
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens is ordered longest first so matching is greedy.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets names common formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD,
// D) into a Go layout. Text in brackets is copied literally, as is any
// other character.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout strings.Builder
	layout.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			layout.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		n := 1
		lit := format[i : i+1]
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				n, lit = len(t.token), t.goFmt
				break
			}
		}
		layout.WriteString(lit)
		i += n
	}

	return layout.String(), nil
}

// ResolveDate expands "auto" (today as YYYY-MM-DD), "auto:FORMAT" and
// "auto:PRESET" against t. Any other value is returned unchanged.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultDateFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:"):
		format = value[len("auto:"):]
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(format)]; ok {
			format = preset
		}
	default:
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
