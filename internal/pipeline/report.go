package pipeline

import (
	"fmt"
	"strings"

	"github.com/alnah/go-bookindex/internal/index"
)

// markdownSpecial lists the ASCII punctuation that can start or end
// inline Markdown constructs or split a table cell.
const markdownSpecial = "\\`*_{}[]<>()#+-.!|~"

// BuildReport writes the summary report for counts as Markdown with GFM
// tables. date is printed under the title when non-empty.
func BuildReport(counts index.Counts, date string) string {
	var b strings.Builder

	b.WriteString("# Index report\n\n")
	if date != "" {
		fmt.Fprintf(&b, "Generated %s.\n\n", escapeMarkdown(date))
	}

	b.WriteString("| Entries | Columns | Source |\n")
	b.WriteString("|---:|---:|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %s |\n\n", counts.Total, counts.Columns, counts.Source)

	b.WriteString("## Entries per book\n\n")
	if len(counts.PerBook) == 0 {
		b.WriteString("No entries.\n\n")
	} else {
		b.WriteString("| Book | Entries |\n")
		b.WriteString("|---:|---:|\n")
		for _, bc := range counts.PerBook {
			fmt.Fprintf(&b, "| %d | %d |\n", bc.Book, bc.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Entries per group\n\n")
	if len(counts.PerGroup) == 0 {
		b.WriteString("No entries.\n")
		return b.String()
	}
	b.WriteString("| Group | Entries |\n")
	b.WriteString("|---|---:|\n")
	for _, gc := range counts.PerGroup {
		fmt.Fprintf(&b, "| %s | %d |\n", escapeMarkdown(string(gc.Group)), gc.Count)
	}
	return b.String()
}

// escapeMarkdown backslash-escapes Markdown punctuation so s renders as
// literal text.
func escapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
