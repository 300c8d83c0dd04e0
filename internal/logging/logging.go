// Package logging configures the structured logger shared by all
// components. Until Setup is called every component logger discards its
// output, so library callers stay silent unless the CLI opts in.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Level maps CLI verbosity to a log level: warnings by default, info with
// -v, debug with -vv and trace beyond. Quiet wins over verbosity.
func Level(verbosity int, quiet bool) zerolog.Level {
	if quiet {
		return zerolog.ErrorLevel
	}
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup installs a console logger writing to w and returns it.
// Colors are enabled only when w is a terminal.
func Setup(w io.Writer, verbosity int, quiet bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !IsTerminal(w),
	}

	ctx := zerolog.New(console).Level(Level(verbosity, quiet)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	logger := ctx.Logger()

	mu.Lock()
	base = logger
	mu.Unlock()

	logger.Debug().Int("verbosity", verbosity).Msg("logger initialized")
	return logger
}

// Reset restores the silent default logger.
func Reset() {
	mu.Lock()
	base = zerolog.Nop()
	mu.Unlock()
}

// For returns a logger tagged with the component name. Call it at use
// time rather than caching the result, so a later Setup takes effect.
func For(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", component).Logger()
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LogDuration logs how long an operation took at debug level.
func LogDuration(logger zerolog.Logger, start time.Time, operation string) {
	logger.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("operation completed")
}
