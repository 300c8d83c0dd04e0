package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Sentinel errors for document templating.
var (
	ErrTemplateParse  = errors.New("document template parsing failed")
	ErrDocumentRender = errors.New("document template rendering failed")
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before </head>, else after <body>,
// else at the start. CSS content is sanitized so it cannot close the
// style element.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot end the <style>
// element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// PageData fills the document template.
type PageData struct {
	Lang      string
	Title     string // <title> text
	Heading   string // optional visible title above the body
	BodyClass string
	Body      template.HTML // trusted fragment produced by this package
}

// DocumentRenderer wraps a body fragment in a full HTML document.
type DocumentRenderer interface {
	Render(ctx context.Context, data PageData) (string, error)
}

// DocumentTemplate renders PageData with html/template, so every field
// but Body is escaped.
type DocumentTemplate struct {
	tmpl *template.Template
}

// NewDocumentTemplate parses tmplContent.
func NewDocumentTemplate(tmplContent string) (*DocumentTemplate, error) {
	tmpl, err := template.New("document").Option("missingkey=error").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &DocumentTemplate{tmpl: tmpl}, nil
}

// Render executes the template. An empty Lang defaults to "en".
func (d *DocumentTemplate) Render(ctx context.Context, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if data.Lang == "" {
		data.Lang = "en"
	}

	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// Compile-time interface checks.
var (
	_ CSSInjector      = (*CSSInjection)(nil)
	_ DocumentRenderer = (*DocumentTemplate)(nil)
)
