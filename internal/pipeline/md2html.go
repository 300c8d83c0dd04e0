package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment with goldmark.
// Raw HTML in the input is not rendered.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM tables.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment. Goldmark has no
// context support, so conversion runs in a goroutine raced against ctx.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)
