// Package index holds index entries and the operations on a whole index:
// parsing, tabular import, ordering, duplicate detection, counting and
// search.
package index

import (
	"strconv"
	"strings"

	"github.com/alnah/go-bookindex/internal/markup"
)

// SourceKind records which input format an index was read from.
type SourceKind int

const (
	SourceText SourceKind = iota
	SourceTSV
)

func (k SourceKind) String() string {
	if k == SourceTSV {
		return "tsv"
	}
	return "text"
}

// Entry is one index record. Keyword and Comment may embed markup.
type Entry struct {
	Keyword  string
	Location string // digits.digits
	Comment  string // empty when absent
	Line     int    // 1-based source line, 0 when built in code
}

// Book returns the book number: the integer before the dot of Location,
// or 0 when it cannot be read.
func (e Entry) Book() int {
	head, _, _ := strings.Cut(e.Location, ".")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return n
}

// HasComment reports whether the entry carries a comment.
func (e Entry) HasComment() bool {
	return e.Comment != ""
}

// Index is an ordered collection of entries.
type Index struct {
	Entries []Entry
	Source  SourceKind
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.Entries)
}

// Columns returns 3 when any entry has a comment, 2 otherwise.
func (ix *Index) Columns() int {
	if ix == nil {
		return 2
	}
	for _, e := range ix.Entries {
		if e.HasComment() {
			return 3
		}
	}
	return 2
}

// KeyMode returns the sort key mode for the index source: tabular imports
// sort on the raw keyword.
func (ix *Index) KeyMode() markup.KeyMode {
	if ix != nil && ix.Source == SourceTSV {
		return markup.KeyRaw
	}
	return markup.KeyMarkup
}
