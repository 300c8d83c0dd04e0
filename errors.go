package bookindex

import (
	"errors"

	"github.com/alnah/go-bookindex/internal/assets"
	"github.com/alnah/go-bookindex/internal/index"
	"github.com/alnah/go-bookindex/internal/markup"
)

// Sentinel errors for library operations.
var (
	ErrEmptyIndex     = errors.New("index has no entries")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Footer validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")

	// ErrInvalidBookColor indicates a book color that is not a CSS color.
	ErrInvalidBookColor = errors.New("invalid book color")

	// ErrInvalidAssetPath indicates an unusable custom asset directory.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// Errors from the entry readers and the asset loader, re-exported so
// callers can match them without importing internal packages.
var (
	ErrMissingLocation   = index.ErrMissingLocation
	ErrMissingKeyword    = index.ErrMissingKeyword
	ErrAmbiguousLocation = index.ErrAmbiguousLocation
	ErrImportFormat      = index.ErrImportFormat
	ErrSearchScope       = index.ErrSearchScope
	ErrUnknownScope      = index.ErrUnknownScope
	ErrEmptyQuery        = index.ErrEmptyQuery
	ErrMarkup            = markup.ErrMarkup
	ErrStyleNotFound     = assets.ErrStyleNotFound
)
