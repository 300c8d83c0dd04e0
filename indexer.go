package bookindex

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"strconv"
	"time"

	"github.com/alnah/go-bookindex/internal/assets"
	"github.com/alnah/go-bookindex/internal/fileutil"
	"github.com/alnah/go-bookindex/internal/index"
	"github.com/alnah/go-bookindex/internal/logging"
	"github.com/alnah/go-bookindex/internal/pipeline"
)

// Document titles used when Input.Title is empty.
const (
	defaultIndexTitle      = "Index"
	defaultDuplicatesTitle = "Duplicates"
	reportTitle            = "Index report"
)

// Indexer turns an index into HTML documents and, on request, PDFs.
// Create with NewIndexer, call Build for every index, and Close when done.
type Indexer struct {
	cfg           indexerConfig
	assetLoader   assets.AssetLoader
	style         string // resolved CSS for the index documents
	reportStyle   string
	assembler     pipeline.IndexAssembler
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	document      pipeline.DocumentRenderer
	pdfConverter  pdfConverter
}

// NewIndexer creates an Indexer. It fails when the asset directory is
// unusable or the stylesheet or document template cannot be loaded.
func NewIndexer(opts ...Option) (*Indexer, error) {
	ix := &Indexer{
		cfg:           indexerConfig{timeout: defaultTimeout},
		assembler:     &pipeline.Assembler{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(ix)
	}

	resolver, err := assets.NewAssetResolver(ix.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	ix.assetLoader = resolver

	if err := ix.resolveStyles(); err != nil {
		return nil, err
	}

	if ix.document == nil {
		content, err := ix.assetLoader.LoadTemplate(assets.DocumentTemplateName)
		if err != nil {
			return nil, fmt.Errorf("loading document template: %w", err)
		}
		ix.document, err = pipeline.NewDocumentTemplate(content)
		if err != nil {
			return nil, fmt.Errorf("initializing document template: %w", err)
		}
	}

	// The browser itself only starts on the first PDF.
	if ix.pdfConverter == nil {
		ix.pdfConverter = newRodConverter(ix.cfg.timeout)
	}

	return ix, nil
}

// resolveStyles loads the index stylesheet (a name or a .css path) and
// the report stylesheet.
func (ix *Indexer) resolveStyles() error {
	name := ix.cfg.style
	if name == "" {
		name = assets.DefaultStyleName
	}

	if fileutil.IsCSSFile(name) {
		content, err := os.ReadFile(name) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", name, err)
		}
		ix.style = string(content)
	} else {
		css, err := ix.assetLoader.LoadStyle(name)
		if err != nil {
			return fmt.Errorf("loading style %q: %w", name, err)
		}
		ix.style = css
	}

	css, err := ix.assetLoader.LoadStyle(assets.ReportStyleName)
	if err != nil {
		return fmt.Errorf("loading report style: %w", err)
	}
	ix.reportStyle = css
	return nil
}

// Build sorts input.Index and renders the requested documents.
// Markup problems never fail a build; they are returned as diagnostics
// on each Output.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (ix *Indexer) Build(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	log := logging.For("indexer")
	start := time.Now()
	defer logging.LogDuration(log, start, "build")

	sorted := input.Index.Sorted(input.Index.KeyMode())
	css := ix.buildCSS(sorted, input)

	title := input.Title
	if title == "" {
		title = defaultIndexTitle
	}

	result = &Result{}
	result.Index, err = ix.buildIndexDocument(ctx, sorted, input, css, title, pipeline.AssembleOptions{
		ColorByBook: input.ColorByBook,
		PageBreaks:  input.PageBreaks,
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Int("entries", result.Index.Entries).Int("groups", result.Index.Groups).Msg("index assembled")

	if input.Duplicates {
		dupTitle := defaultDuplicatesTitle
		if input.Title != "" {
			dupTitle = input.Title + " - " + defaultDuplicatesTitle
		}
		result.Duplicates, err = ix.buildIndexDocument(ctx, sorted.Duplicates(), input, css, dupTitle, pipeline.AssembleOptions{
			ColorByBook: input.ColorByBook,
		})
		if err != nil {
			return nil, fmt.Errorf("duplicates: %w", err)
		}
		log.Info().Int("entries", result.Duplicates.Entries).Msg("duplicates found")
	}

	if input.Report {
		result.Report, err = ix.buildReport(ctx, sorted, input)
		if err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}
	}

	return result, nil
}

// validateInput is the trust boundary for library callers. CLI input is
// validated earlier by config.Validate; both paths end here.
func validateInput(input Input) error {
	if input.Index.Len() == 0 {
		return ErrEmptyIndex
	}
	if input.PDF {
		if err := input.Page.Validate(); err != nil {
			return err
		}
		if err := input.Footer.Validate(); err != nil {
			return err
		}
	}
	return validateBookColors(input.BookColors)
}

// buildCSS combines the stylesheet, book colors, page break rules and the
// caller's CSS, in that order so later rules win.
func (ix *Indexer) buildCSS(sorted *Index, input Input) string {
	css := ix.style
	if input.ColorByBook {
		css += buildBookColorsCSS(index.CountByBook(sorted), input.BookColors)
	}
	css += buildPageBreaksCSS(input.PageBreaks)
	if input.CSS != "" {
		css += "\n" + input.CSS
	}
	return css
}

// buildIndexDocument assembles entries into a complete document.
func (ix *Indexer) buildIndexDocument(ctx context.Context, entries *Index, input Input, css, title string, opts pipeline.AssembleOptions) (*Output, error) {
	doc, err := ix.assembler.Assemble(ctx, entries, opts)
	if err != nil {
		return nil, fmt.Errorf("assembling index: %w", err)
	}

	page, err := ix.document.Render(ctx, pipeline.PageData{
		Lang:      input.Lang,
		Title:     title,
		Heading:   input.Title,
		BodyClass: "cols-" + strconv.Itoa(doc.Columns),
		Body:      template.HTML(doc.Body), // #nosec G203 -- built by the assembler from escaped fields
	})
	if err != nil {
		return nil, err
	}

	page = ix.cssInjector.InjectCSS(ctx, page, css)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &Output{
		HTML:        []byte(page),
		Entries:     entries.Len(),
		Groups:      len(doc.Groups),
		Pages:       doc.Pages,
		Diagnostics: doc.Diagnostics,
	}
	if err := ix.renderPDF(ctx, out, input); err != nil {
		return nil, err
	}
	return out, nil
}

// buildReport renders the entry tallies through Markdown.
func (ix *Indexer) buildReport(ctx context.Context, sorted *Index, input Input) (*Output, error) {
	counts := index.Count(sorted)

	body, err := ix.htmlConverter.ToHTML(ctx, pipeline.BuildReport(counts, input.ReportDate))
	if err != nil {
		return nil, err
	}

	page, err := ix.document.Render(ctx, pipeline.PageData{
		Lang:  input.Lang,
		Title: reportTitle,
		Body:  template.HTML(body), // #nosec G203 -- goldmark output without raw HTML
	})
	if err != nil {
		return nil, err
	}

	page = ix.cssInjector.InjectCSS(ctx, page, ix.reportStyle)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &Output{
		HTML:    []byte(page),
		Entries: counts.Total,
		Groups:  len(counts.PerGroup),
		Pages:   1,
	}
	if err := ix.renderPDF(ctx, out, input); err != nil {
		return nil, err
	}
	return out, nil
}

// renderPDF fills out.PDF when the input asks for PDFs.
func (ix *Indexer) renderPDF(ctx context.Context, out *Output, input Input) error {
	if !input.PDF {
		return nil
	}
	pdf, err := ix.pdfConverter.ToPDF(ctx, string(out.HTML), &pdfOptions{
		Page:   input.Page,
		Footer: input.Footer,
	})
	if err != nil {
		return fmt.Errorf("converting to PDF: %w", err)
	}
	out.PDF = pdf
	return nil
}

// Close releases the browser, if one was started.
func (ix *Indexer) Close() error {
	if ix.pdfConverter != nil {
		return ix.pdfConverter.Close()
	}
	return nil
}
