package bookindex

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alnah/go-bookindex/internal/index"
	"github.com/alnah/go-bookindex/internal/markup"
)

// Aliases for the entry model, usable without importing internal packages.
type (
	Entry                = index.Entry
	Index                = index.Index
	SourceKind           = index.SourceKind
	Scope                = index.Scope
	MarkupError          = markup.MarkupError
	MissingLocationError = index.MissingLocationError
	ParseError           = index.ParseError
	ImportFormatError    = index.ImportFormatError
)

// Source kinds and search scopes.
const (
	SourceText = index.SourceText
	SourceTSV  = index.SourceTSV

	ScopeKeyword = index.ScopeKeyword
	ScopeComment = index.ScopeComment
	ScopeBoth    = index.ScopeBoth
)

// Parse reads line-oriented entries ("keyword location [comment]").
func Parse(r io.Reader) (*Index, error) { return index.Parse(r) }

// LoadTSV reads a tab-separated export with Keyword and Location columns.
func LoadTSV(r io.Reader) (*Index, error) { return index.LoadTSV(r) }

// Search returns the entries whose normalized fields contain query.
func Search(ix *Index, query string, scope Scope) ([]Entry, error) {
	return index.Search(ix, query, scope)
}

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid. A nil receiver means
// defaults and is valid.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	switch strings.ToLower(p.Size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}
	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// Footer configures the PDF page footer.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Date           string // already resolved
	Text           string
}

// Validate checks the footer position. A nil footer is valid.
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// Input describes one build.
type Input struct {
	Index *Index // required, in source order

	Title string // document title; also shown as a heading when set
	Lang  string // html lang attribute, default "en"

	ColorByBook bool           // color location cells by book
	BookColors  map[int]string // per-book overrides of the built-in palette
	PageBreaks  bool           // start a printed page at every group

	Duplicates bool   // also build the duplicates document
	Report     bool   // also build the summary report
	ReportDate string // printed under the report title

	PDF    bool          // also render every document to PDF
	Page   *PageSettings // nil = defaults
	Footer *Footer       // nil = no footer

	CSS string // appended after the built-in stylesheet
}

// Output is one generated document.
type Output struct {
	HTML        []byte
	PDF         []byte // nil unless Input.PDF
	Entries     int
	Groups      int
	Pages       int
	Diagnostics []*MarkupError
}

// Result holds the documents of one build. Duplicates and Report are nil
// unless requested.
type Result struct {
	Index      *Output
	Duplicates *Output
	Report     *Output
}

// Option configures an Indexer.
type Option func(*Indexer)

// indexerConfig holds internal configuration for Indexer.
type indexerConfig struct {
	timeout   time.Duration
	style     string // name, .css path, or empty for the default style
	assetPath string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("bookindex: WithTimeout duration must be positive")
	}
	return func(ix *Indexer) {
		ix.cfg.timeout = d
	}
}

// WithStyle selects the stylesheet: an embedded style name such as
// "compact", or the path of a CSS file.
func WithStyle(nameOrPath string) Option {
	return func(ix *Indexer) {
		ix.cfg.style = nameOrPath
	}
}

// WithAssetPath serves styles and templates from dir, falling back to the
// embedded copies for names dir lacks.
func WithAssetPath(dir string) Option {
	return func(ix *Indexer) {
		ix.cfg.assetPath = dir
	}
}
