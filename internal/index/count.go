package index

import (
	"cmp"
	"slices"

	"github.com/alnah/go-bookindex/internal/markup"
)

// BookCount is the number of entries pointing into one book.
type BookCount struct {
	Book  int
	Count int
}

// GroupCount is the number of entries in one alphabetic group.
type GroupCount struct {
	Group markup.Group
	Count int
}

// Counts summarizes an index.
type Counts struct {
	Total    int
	Columns  int
	Source   SourceKind
	PerBook  []BookCount
	PerGroup []GroupCount
}

// CountByBook tallies entries per book, in ascending book order.
func CountByBook(ix *Index) []BookCount {
	tally := make(map[int]int)
	for _, e := range ix.Entries {
		tally[e.Book()]++
	}

	out := make([]BookCount, 0, len(tally))
	for book, n := range tally {
		out = append(out, BookCount{Book: book, Count: n})
	}
	slices.SortFunc(out, func(a, b BookCount) int { return cmp.Compare(a.Book, b.Book) })
	return out
}

// CountByGroup tallies entries per group, in order of first appearance.
// Counting a sorted index therefore lists groups in document order.
func CountByGroup(ix *Index) []GroupCount {
	pos := make(map[markup.Group]int)
	var out []GroupCount
	for _, e := range ix.Entries {
		g := markup.Classify(e.Keyword)
		i, seen := pos[g]
		if !seen {
			i = len(out)
			pos[g] = i
			out = append(out, GroupCount{Group: g})
		}
		out[i].Count++
	}
	return out
}

// Count bundles both tallies with the totals.
func Count(ix *Index) Counts {
	return Counts{
		Total:    ix.Len(),
		Columns:  ix.Columns(),
		Source:   ix.Source,
		PerBook:  CountByBook(ix),
		PerGroup: CountByGroup(ix),
	}
}
