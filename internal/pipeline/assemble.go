package pipeline

import (
	"context"
	"html"
	"strconv"
	"strings"

	"github.com/alnah/go-bookindex/internal/index"
	"github.com/alnah/go-bookindex/internal/markup"
)

// cancelCheckInterval is how many rows are written between context checks.
const cancelCheckInterval = 256

// AssembleOptions controls the layout of an index document.
type AssembleOptions struct {
	// ColorByBook adds a "book-N" class to every location cell.
	ColorByBook bool
	// PageBreaks starts a new printable section for every group.
	PageBreaks bool
}

// Document is an assembled index body with facts about its layout.
type Document struct {
	Body        string // one or more <section class="table"> elements
	Columns     int
	Groups      []markup.Group
	Pages       int // number of sections
	Diagnostics []*markup.MarkupError
}

// IndexAssembler turns a sorted index into a document body.
type IndexAssembler interface {
	Assemble(ctx context.Context, ix *index.Index, opts AssembleOptions) (*Document, error)
}

// Assembler lays out a sorted index as rows of cells with a header row at
// every group change.
type Assembler struct{}

// Assemble renders ix, which must already be sorted. Every keyword and
// comment is rendered through the markup renderer; its diagnostics are
// collected on the Document with the entry's line and field.
func (a *Assembler) Assemble(ctx context.Context, ix *index.Index, opts AssembleOptions) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := &Document{Columns: ix.Columns()}
	sectionOpen := `<section class="table">`
	if opts.PageBreaks {
		sectionOpen = `<section class="table page">`
	}

	var b strings.Builder
	b.WriteString(sectionOpen)
	doc.Pages = 1

	for i, e := range ix.Entries {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		g := markup.Classify(e.Keyword)
		if len(doc.Groups) == 0 || g != doc.Groups[len(doc.Groups)-1] {
			if len(doc.Groups) > 0 && opts.PageBreaks {
				b.WriteString("</section>")
				b.WriteString(sectionOpen)
				doc.Pages++
			}
			writeGroupHeader(&b, g, doc.Columns)
			doc.Groups = append(doc.Groups, g)
		}

		doc.Diagnostics = append(doc.Diagnostics, writeRow(&b, e, doc.Columns, opts.ColorByBook)...)
	}

	b.WriteString("</section>")
	doc.Body = b.String()
	return doc, nil
}

func writeGroupHeader(b *strings.Builder, g markup.Group, columns int) {
	b.WriteString(`<div class="row">`)
	if columns == 3 {
		b.WriteString("<div></div>")
	}
	b.WriteString(`<div class="alphabet"><h1>`)
	b.WriteString(html.EscapeString(string(g)))
	b.WriteString("</h1></div><div></div></div>")
}

// writeRow writes one entry: location and keyword for two columns;
// keyword, location and comment for three.
func writeRow(b *strings.Builder, e index.Entry, columns int, colorByBook bool) []*markup.MarkupError {
	keyword, diags := markup.RenderHTML(e.Keyword)
	markup.Annotate(diags, e.Line, "keyword")

	location := `<div class="location`
	if colorByBook {
		location += " book-" + strconv.Itoa(e.Book())
	}
	location += `">` + html.EscapeString(e.Location) + "</div>"

	b.WriteString(`<div class="row">`)
	if columns == 2 {
		b.WriteString(location)
		b.WriteString(`<div class="keyword">` + keyword + "</div>")
	} else {
		comment, commentDiags := markup.RenderHTML(e.Comment)
		diags = append(diags, markup.Annotate(commentDiags, e.Line, "comment")...)

		b.WriteString(`<div class="keyword">` + keyword + "</div>")
		b.WriteString(location)
		b.WriteString(`<div class="comment">` + comment + "</div>")
	}
	b.WriteString("</div>")
	return diags
}

// Compile-time interface check.
var _ IndexAssembler = (*Assembler)(nil)
