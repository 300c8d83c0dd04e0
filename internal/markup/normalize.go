package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// KeyMode selects how sort keys are derived from keywords.
type KeyMode int

const (
	// KeyMarkup strips markup before folding. Used for text input.
	KeyMarkup KeyMode = iota
	// KeyRaw folds the keyword as written. Used for tabular imports,
	// whose keywords are sorted verbatim.
	KeyRaw
)

// Group is the alphabetic section an entry belongs to: an upper-case letter
// or CatchAll.
type Group string

// CatchAll collects keywords that do not start with a letter.
const CatchAll Group = "#./!"

// Normalize removes every markup marker from s, keeping the content of
// color spans. A lone ";;" in s is removed on its own, so the word after
// it stays in the key. Asterisks are removed unconditionally, escaped or
// not.
//
// The result is a fixpoint: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	for {
		next := stripOnce(s)
		if next == s {
			return next
		}
		s = next
	}
}

// stripOnce drops color markers and strays, then removes asterisks.
// It never lengthens its input, which bounds the fixpoint loop in
// Normalize.
func stripOnce(s string) string {
	if strings.Count(s, colorMarker) == 1 {
		return strings.ReplaceAll(strings.Replace(s, colorMarker, "", 1), "*", "")
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, t := range Lex(s) {
		switch t.Kind {
		case ColorOpen, ColorClose, Stray:
		default:
			b.WriteString(t.Raw)
		}
	}
	return strings.ReplaceAll(b.String(), "*", "")
}

// SortKey returns the case-folded key used to order keywords.
func SortKey(keyword string, mode KeyMode) string {
	if mode == KeyMarkup {
		keyword = Normalize(keyword)
	}
	return cases.Fold().String(strings.TrimSpace(keyword))
}

// Classify returns the group of a raw keyword from its first meaningful
// character. A color opener is skipped up to and including the whitespace
// after its name, whether or not the span is ever closed.
func Classify(keyword string) Group {
	i := 0
	for i < len(keyword) {
		if strings.HasPrefix(keyword[i:], colorMarker) {
			rest := keyword[i+2:]
			k := strings.IndexFunc(rest, unicode.IsSpace)
			if k < 0 {
				return CatchAll
			}
			_, size := utf8.DecodeRuneInString(rest[k:])
			i += 2 + k + size
			continue
		}
		r, size := utf8.DecodeRuneInString(keyword[i:])
		if r == '*' {
			i += size
			continue
		}
		if unicode.IsLetter(r) {
			return Group(string(unicode.ToUpper(r)))
		}
		return CatchAll
	}
	return CatchAll
}

// CompareGroups orders groups with CatchAll first, then by code point.
func CompareGroups(a, b Group) int {
	switch {
	case a == b:
		return 0
	case a == CatchAll:
		return -1
	case b == CatchAll:
		return 1
	}
	return strings.Compare(string(a), string(b))
}

// Collation is a keyword's precomputed place in index order.
type Collation struct {
	Group Group
	Key   string
}

// Collate computes the group and sort key of keyword once, for callers
// that compare the same keyword many times.
func Collate(keyword string, mode KeyMode) Collation {
	return Collation{Group: Classify(keyword), Key: SortKey(keyword, mode)}
}

// Compare orders c before, equal to or after o: by group first, then by
// sort key.
func (c Collation) Compare(o Collation) int {
	if g := CompareGroups(c.Group, o.Group); g != 0 {
		return g
	}
	return strings.Compare(c.Key, o.Key)
}

// Compare orders two keywords as they appear in the index.
func Compare(a, b string, mode KeyMode) int {
	return Collate(a, mode).Compare(Collate(b, mode))
}
