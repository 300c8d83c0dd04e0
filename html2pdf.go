package bookindex

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-bookindex/internal/fileutil"
	"github.com/alnah/go-bookindex/internal/logging"
	"github.com/alnah/go-bookindex/internal/process"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// Compile-time interface checks
var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	Page   *PageSettings
	Footer *Footer
}

// paperSize is a sheet size in inches, portrait.
type paperSize struct {
	width, height float64
}

var paperSizes = map[string]paperSize{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// marginBottomWithFooter is the minimum bottom margin leaving room for the footer.
const marginBottomWithFooter = 0.75

// rodRenderer implements pdfRenderer using go-rod.
// Rod downloads Chromium on first use when no browser is found.
type rodRenderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// Containers and CI runners lack the user namespaces the sandbox needs.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	log := logging.For("pdf")
	log.Debug().Int("pid", l.PID()).Msg("browser started")
	return nil
}

// Close releases browser resources and kills Chrome's helper processes.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.kill()
	return err
}

func (r *rodRenderer) kill() {
	if r.launcher == nil {
		return
	}
	process.KillProcessGroup(r.launcher.PID())
	r.launcher.Kill()
	r.launcher = nil
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it to PDF.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPDFOptions constructs proto.PagePrintToPDF from page settings and
// an optional footer.
func buildPDFOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	page := DefaultPageSettings()
	var footer *Footer
	if opts != nil {
		if opts.Page != nil {
			page = opts.Page
		}
		footer = opts.Footer
	}

	size, ok := paperSizes[strings.ToLower(page.Size)]
	if !ok {
		size = paperSizes[PageSizeLetter]
	}
	width, height := size.width, size.height
	if strings.EqualFold(page.Orientation, OrientationLandscape) {
		width, height = height, width
	}

	margin := page.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	marginBottom := margin
	if footer != nil && marginBottom < marginBottomWithFooter {
		marginBottom = marginBottomWithFooter
	}

	pdfOpts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(marginBottom),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}

	if footer != nil {
		pdfOpts.DisplayHeaderFooter = true
		pdfOpts.HeaderTemplate = "<span></span>"
		pdfOpts.FooterTemplate = buildFooterTemplate(footer)
	}

	return pdfOpts
}

// buildFooterTemplate generates an HTML template for Chrome's native footer.
// Chrome fills the pageNumber and totalPages classes.
func buildFooterTemplate(f *Footer) string {
	if f == nil {
		return "<span></span>"
	}

	var parts []string
	if f.ShowPageNumber {
		parts = append(parts, `<span class="pageNumber"></span>/<span class="totalPages"></span>`)
	}
	if f.Date != "" {
		parts = append(parts, html.EscapeString(f.Date))
	}
	if f.Text != "" {
		parts = append(parts, html.EscapeString(f.Text))
	}

	if len(parts) == 0 {
		return "<span></span>"
	}

	textAlign := "right"
	switch strings.ToLower(f.Position) {
	case "left":
		textAlign = "left"
	case "center":
		textAlign = "center"
	}

	return fmt.Sprintf(`<div style="font-size: 10px; font-family: %s; color: #aaa; width: 100%%; text-align: %s; padding: 0 0.5in;">%s</div>`,
		defaultFontFamily, textAlign, strings.Join(parts, " - "))
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter converts HTML to PDF using headless Chrome via go-rod.
type rodConverter struct {
	renderer pdfRenderer
}

// newRodConverter creates a rodConverter with production renderer.
func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{renderer: newRodRenderer(timeout)}
}

// ToPDF writes htmlContent to a temporary file and renders it.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
