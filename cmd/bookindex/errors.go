package main

import (
	"context"
	"errors"

	bookindex "github.com/alnah/go-bookindex"
	"github.com/alnah/go-bookindex/internal/assets"
	"github.com/alnah/go-bookindex/internal/config"
	"github.com/alnah/go-bookindex/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input file specified")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var mle *bookindex.MissingLocationError
	if errors.As(err, &mle) {
		return hints.ForMissingLocation(mle.Text)
	}

	var nfe *config.NotFoundError
	if errors.As(err, &nfe) {
		return hints.ForConfigNotFound(nfe.Tried)
	}

	switch {
	case errors.Is(err, bookindex.ErrImportFormat):
		return hints.ForImportFormat()
	case errors.Is(err, bookindex.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().StyleNames())
	case errors.Is(err, bookindex.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, bookindex.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
