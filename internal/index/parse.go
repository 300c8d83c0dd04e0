package index

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/alnah/go-bookindex/internal/logging"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

var (
	locationRegex      = regexp.MustCompile(`\d+\.\d+`)
	exactLocationRegex = regexp.MustCompile(`^\d+\.\d+$`)
)

// ParseLine parses one line of the text format:
//
//	keyword LOCATION [comment]
//
// The location is the first digits.digits run. The text around every
// location match is trimmed and empty pieces are dropped: one piece is the
// keyword, two are keyword and comment.
func ParseLine(line string) (Entry, error) {
	location := locationRegex.FindString(line)
	if location == "" {
		return Entry{}, &MissingLocationError{Text: line}
	}

	var parts []string
	for _, frag := range locationRegex.Split(line, -1) {
		if frag = strings.TrimSpace(frag); frag != "" {
			parts = append(parts, frag)
		}
	}

	switch len(parts) {
	case 0:
		return Entry{}, &ParseError{Text: line, Err: ErrMissingKeyword}
	case 1:
		return Entry{Keyword: parts[0], Location: location}, nil
	case 2:
		return Entry{Keyword: parts[0], Location: location, Comment: parts[1]}, nil
	default:
		return Entry{}, &ParseError{Text: line, Err: ErrAmbiguousLocation}
	}
}

// Parse reads the text format from r. Blank lines and lines starting with
// '#' are skipped. The first invalid line aborts the parse.
func Parse(r io.Reader) (*Index, error) {
	log := logging.For("parser")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	ix := &Index{Source: SourceText}
	lineNum := 0
	tabLine := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		if tabLine == 0 && strings.Contains(line, "\t") {
			tabLine = lineNum
		}

		e, err := ParseLine(line)
		if err != nil {
			return nil, withLine(err, lineNum)
		}
		e.Line = lineNum
		ix.Entries = append(ix.Entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input at line %d: %w", lineNum+1, err)
	}

	if tabLine > 0 {
		log.Warn().Int("line", tabLine).Msg("input contains tabs; tabular files need --tsv")
	}
	log.Debug().Int("entries", ix.Len()).Int("columns", ix.Columns()).Msg("parsed text index")
	return ix, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Index, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}
