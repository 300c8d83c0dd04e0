package index

import (
	"fmt"
	"strings"

	"github.com/alnah/go-bookindex/internal/markup"
	"golang.org/x/text/cases"
)

// Scope selects the fields a search looks at.
type Scope int

const (
	ScopeKeyword Scope = iota
	ScopeComment
	ScopeBoth
)

var scopeNames = [...]string{
	ScopeKeyword: "keyword",
	ScopeComment: "comment",
	ScopeBoth:    "both",
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

// ParseScope accepts a scope name or any prefix of it ("k", "com", "b").
// An empty string means keyword.
func ParseScope(s string) (Scope, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ScopeKeyword, nil
	}
	for i, name := range scopeNames {
		if strings.HasPrefix(name, s) {
			return Scope(i), nil
		}
	}
	return ScopeKeyword, fmt.Errorf("%w: %q (want keyword, comment or both)", ErrUnknownScope, s)
}

// Search returns the entries whose normalized fields contain query,
// ignoring case. Comment and both scopes need a 3-column index.
func Search(ix *Index, query string, scope Scope) ([]Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if scope != ScopeKeyword && ix.Columns() != 3 {
		return nil, fmt.Errorf("%w: %s", ErrSearchScope, scope)
	}

	fold := cases.Fold()
	needle := fold.String(query)
	contains := func(field string) bool {
		return strings.Contains(fold.String(markup.Normalize(field)), needle)
	}

	var out []Entry
	for _, e := range ix.Entries {
		var hit bool
		switch scope {
		case ScopeKeyword:
			hit = contains(e.Keyword)
		case ScopeComment:
			hit = contains(e.Comment)
		default:
			hit = contains(e.Keyword) || contains(e.Comment)
		}
		if hit {
			out = append(out, e)
		}
	}
	return out, nil
}
