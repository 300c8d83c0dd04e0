package bookindex

import (
	"fmt"
	"strings"

	"github.com/alnah/go-bookindex/internal/index"
	"github.com/alnah/go-bookindex/internal/markup"
)

// defaultFontFamily is the font stack for PDF footers.
const defaultFontFamily = "sans-serif"

// bookPalette colors books 1, 2, 3 and then repeats.
var bookPalette = []string{"#b7e1cd", "#e1c8b7", "#b7c5e1"}

// bookColor returns the override for book, else its palette color.
func bookColor(book int, overrides map[int]string) string {
	if c, ok := overrides[book]; ok {
		return c
	}
	if book <= 0 {
		return bookPalette[0]
	}
	return bookPalette[(book-1)%len(bookPalette)]
}

// validateBookColors rejects overrides that are not CSS color values.
func validateBookColors(colors map[int]string) error {
	for book, c := range colors {
		if !markup.ValidColor(c) {
			return fmt.Errorf("%w: book %d: %q", ErrInvalidBookColor, book, c)
		}
	}
	return nil
}

// buildBookColorsCSS generates one background rule per book in counts.
func buildBookColorsCSS(counts []index.BookCount, overrides map[int]string) string {
	if len(counts) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("\n/* Book colors */\n")
	for _, bc := range counts {
		fmt.Fprintf(&buf, ".location.book-%d { background-color: %s; }\n", bc.Book, bookColor(bc.Book, overrides))
	}
	return buf.String()
}

// buildPageBreaksCSS keeps rows whole on a page and, when pageBreaks is
// set, ends a printed page after every group section.
func buildPageBreaksCSS(pageBreaks bool) string {
	var buf strings.Builder

	buf.WriteString(`
/* Page breaks: never split a row or leave a group label alone */
div.row {
  break-inside: avoid;
  page-break-inside: avoid;
}
div.row:has(> .alphabet) {
  break-after: avoid;
  page-break-after: avoid;
}
`)

	if pageBreaks {
		buf.WriteString(`
/* Page breaks: one page per group */
section.page {
  break-after: page;
  page-break-after: always;
}
section.page:last-of-type {
  break-after: auto;
  page-break-after: auto;
}
`)
	}

	return buf.String()
}
