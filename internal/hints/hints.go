// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-bookindex/internal/fileutil"
	"github.com/alnah/go-bookindex/internal/markup"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large indexes, use --timeout flag")
}

// ForConfigNotFound suggests --config and, when one of the searched
// paths is the per-user directory, creating the file there.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-bookindex") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the embedded styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMissingLocation explains the expected location syntax. A line
// holding tabs is most likely a TSV export.
func ForMissingLocation(line string) string {
	if strings.Contains(line, "\t") {
		return format("the input looks tab-separated, use --tsv")
	}
	return format("every entry needs a location such as 2.101 (book.page)")
}

// ForImportFormat names the header row a TSV file must start with.
func ForImportFormat() string {
	return format("the first row must name the Keyword and Location columns; drop --tsv for plain text")
}

// ForMarkup returns a hint for a markup diagnostic reason.
func ForMarkup(reason string) string {
	switch reason {
	case markup.ReasonUnmatchedBold, markup.ReasonUnmatchedItalic:
		return format(`escape a literal asterisk as \*`)
	case markup.ReasonUnclosedColor, markup.ReasonStrayMarker:
		return format("color spans are written ;;color text;;")
	case markup.ReasonInvalidColor:
		return format("use a CSS color name or a hex value such as #ff0000")
	default:
		return ""
	}
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
