package index

import (
	"slices"
	"strings"

	"github.com/alnah/go-bookindex/internal/markup"
	"golang.org/x/text/cases"
)

// Sorted returns a new index ordered for output: catch-all group first,
// then by group label, then by case-folded sort key. Equal keys keep their
// input order. The receiver is not modified.
func (ix *Index) Sorted(mode markup.KeyMode) *Index {
	type keyed struct {
		key   markup.Collation
		entry Entry
	}

	items := make([]keyed, ix.Len())
	for i, e := range ix.Entries {
		items[i] = keyed{key: markup.Collate(e.Keyword, mode), entry: e}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return a.key.Compare(b.key)
	})

	out := &Index{Source: ix.Source, Entries: make([]Entry, len(items))}
	for i, it := range items {
		out.Entries[i] = it.entry
	}
	return out
}

// DuplicateSeparator joins the locations, and the distinct comments, of
// a run of duplicates.
const DuplicateSeparator = ", "

// Duplicates returns one entry per run of adjacent entries whose keywords
// are equal ignoring case, so each repeated keyword appears once however
// long its run. The receiver must already be sorted.
//
// The returned entry keeps the keyword and line of the first entry of the
// run. Its location lists every location of the run in order, and its
// comment lists the run's distinct non-empty comments.
func (ix *Index) Duplicates() *Index {
	out := &Index{Source: ix.Source}
	n := ix.Len()
	if n < 2 {
		return out
	}

	fold := cases.Fold()
	keys := make([]string, n)
	for i, e := range ix.Entries {
		keys[i] = fold.String(strings.TrimSpace(e.Keyword))
	}

	for start := 0; start < n; {
		end := start + 1
		for end < n && keys[end] == keys[start] {
			end++
		}
		if end-start > 1 {
			out.Entries = append(out.Entries, mergeRun(ix.Entries[start:end]))
		}
		start = end
	}
	return out
}

func mergeRun(run []Entry) Entry {
	merged := run[0]

	locations := make([]string, 0, len(run))
	var comments []string
	for _, e := range run {
		locations = append(locations, e.Location)
		if e.HasComment() && !slices.Contains(comments, e.Comment) {
			comments = append(comments, e.Comment)
		}
	}

	merged.Location = strings.Join(locations, DuplicateSeparator)
	merged.Comment = strings.Join(comments, DuplicateSeparator)
	return merged
}
