package index

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-bookindex/internal/logging"
)

// Header names of a tabular import, matched case-insensitively.
const (
	HeaderKeyword  = "Keyword"
	HeaderLocation = "Location"
	HeaderComment  = "Comment"
)

// LoadTSV reads a tab-separated file whose first row names the columns.
// Keyword and Location are required, Comment is optional.
//
// A header lacking a required column yields an *ImportFormatError and an
// empty, non-nil index. A bad row aborts the import.
func LoadTSV(r io.Reader) (*Index, error) {
	log := logging.For("tsv")

	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	empty := &Index{Source: SourceTSV}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return empty, &ImportFormatError{Missing: []string{HeaderKeyword, HeaderLocation}}
	}
	if err != nil {
		return empty, fmt.Errorf("%w: reading header: %v", ErrImportFormat, err)
	}

	headerIndex := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := headerIndex[name]; !dup {
			headerIndex[name] = i
		}
	}

	var missing []string
	for _, h := range []string{HeaderKeyword, HeaderLocation} {
		if _, ok := headerIndex[strings.ToLower(h)]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return empty, &ImportFormatError{Missing: missing}
	}
	_, hasComment := headerIndex[strings.ToLower(HeaderComment)]
	if !hasComment {
		log.Info().Msg("no Comment column; importing keyword and location only")
	}

	ix := &Index{Source: SourceTSV}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
		}
		line, _ := reader.FieldPos(0)

		e := Entry{
			Keyword:  field(record, headerIndex, HeaderKeyword),
			Location: field(record, headerIndex, HeaderLocation),
			Line:     line,
		}
		if hasComment {
			e.Comment = field(record, headerIndex, HeaderComment)
		}

		if !exactLocationRegex.MatchString(e.Location) {
			return nil, &MissingLocationError{Line: line, Text: strings.Join(record, "\t")}
		}
		if e.Keyword == "" {
			return nil, &ParseError{Line: line, Text: strings.Join(record, "\t"), Err: ErrMissingKeyword}
		}
		ix.Entries = append(ix.Entries, e)
	}

	log.Debug().Int("entries", ix.Len()).Int("columns", ix.Columns()).Msg("imported tabular index")
	return ix, nil
}

// LoadTSVFile opens path and imports it with LoadTSV.
func LoadTSVFile(path string) (*Index, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return LoadTSV(f)
}

func field(record []string, headerIndex map[string]int, header string) string {
	if idx, ok := headerIndex[strings.ToLower(header)]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
