package main

import (
	"errors"
	"os"

	bookindex "github.com/alnah/go-bookindex"
	"github.com/alnah/go-bookindex/internal/assets"
	"github.com/alnah/go-bookindex/internal/config"
	"github.com/alnah/go-bookindex/internal/dateutil"
)

// Exit codes for the bookindex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
	ExitInput   = 5 // Malformed entries or tabular import
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, bookindex.ErrBrowserConnect) ||
		errors.Is(err, bookindex.ErrPageCreate) ||
		errors.Is(err, bookindex.ErrPageLoad) ||
		errors.Is(err, bookindex.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Input format errors (exit 5)
	if errors.Is(err, bookindex.ErrMissingLocation) ||
		errors.Is(err, bookindex.ErrMissingKeyword) ||
		errors.Is(err, bookindex.ErrAmbiguousLocation) ||
		errors.Is(err, bookindex.ErrImportFormat) ||
		errors.Is(err, bookindex.ErrEmptyIndex) {
		return ExitInput
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, bookindex.ErrInvalidPageSize) ||
		errors.Is(err, bookindex.ErrInvalidOrientation) ||
		errors.Is(err, bookindex.ErrInvalidMargin) ||
		errors.Is(err, bookindex.ErrInvalidFooterPosition) ||
		errors.Is(err, bookindex.ErrInvalidBookColor) ||
		errors.Is(err, bookindex.ErrInvalidAssetPath) ||
		errors.Is(err, bookindex.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, bookindex.ErrSearchScope) ||
		errors.Is(err, bookindex.ErrUnknownScope) ||
		errors.Is(err, bookindex.ErrEmptyQuery) {
		return ExitUsage
	}

	return ExitGeneral
}
