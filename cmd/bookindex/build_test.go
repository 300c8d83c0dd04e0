package main

// Notes:
// - Pure helpers (mergeFlags, resolveTimeout, buildInput, buildFooter,
//   buildPageSettings, builderOptions) are tested directly.
// - runBuild with PDF output uses a mock Builder from helpers_test.go, so
//   no browser is needed. HTML-only runs use the real Indexer.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	bookindex "github.com/alnah/go-bookindex"
	"github.com/alnah/go-bookindex/internal/config"
	"github.com/alnah/go-bookindex/internal/dateutil"
	"github.com/alnah/go-bookindex/internal/index"
)

// ---------------------------------------------------------------------------
// TestSingleInput - Positional argument count
// ---------------------------------------------------------------------------

func TestSingleInput(t *testing.T) {
	t.Parallel()

	if _, err := singleInput(nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("no args: error = %v, want ErrNoInput", err)
	}
	if _, err := singleInput([]string{"a", "b"}); !errors.Is(err, ErrTooManyArgs) {
		t.Errorf("two args: error = %v, want ErrTooManyArgs", err)
	}
	got, err := singleInput([]string{"a"})
	if err != nil || got != "a" {
		t.Errorf("singleInput([a]) = %q, %v", got, err)
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI flags over config values
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("flags override config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Index:  config.IndexConfig{Title: "Config title", Lang: "en"},
			Output: config.OutputConfig{Dir: "cfg-out"},
			Page:   config.PageConfig{Size: "letter", Margin: 1},
			Style:  "default",
		}
		flags := &buildFlags{
			output: "cli-out",
			pdf:    true,
			index:  indexFlags{title: "CLI title", lang: "fr", duplicates: true},
			page:   pageFlags{size: "a4", orientation: "landscape", margin: 0.75},
			assets: assetFlags{style: "compact", assetPath: "assets"},
		}
		mergeFlags(flags, cfg)

		if cfg.Output.Dir != "cli-out" || !cfg.Output.PDF {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.Index.Title != "CLI title" || cfg.Index.Lang != "fr" || !cfg.Index.Duplicates {
			t.Errorf("Index = %+v", cfg.Index)
		}
		if cfg.Page != (config.PageConfig{Size: "a4", Orientation: "landscape", Margin: 0.75}) {
			t.Errorf("Page = %+v", cfg.Page)
		}
		if cfg.Style != "compact" || cfg.Assets.BasePath != "assets" {
			t.Errorf("Style = %q, Assets = %+v", cfg.Style, cfg.Assets)
		}
	})

	t.Run("unset flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Index:  config.IndexConfig{Title: "Kept", ColorByBook: true, Report: true},
			Output: config.OutputConfig{PDF: true},
		}
		mergeFlags(&buildFlags{}, cfg)

		if cfg.Index.Title != "Kept" || !cfg.Index.ColorByBook || !cfg.Index.Report || !cfg.Output.PDF {
			t.Errorf("config changed by empty flags: %+v", cfg)
		}
	})

	t.Run("footer flags enable footer", func(t *testing.T) {
		t.Parallel()

		for _, ft := range []footerFlags{
			{position: "left"},
			{text: "Draft"},
			{date: "auto"},
			{pageNumber: true},
		} {
			cfg := config.DefaultConfig()
			mergeFlags(&buildFlags{footer: ft}, cfg)
			if !cfg.Footer.Enabled {
				t.Errorf("footer flags %+v did not enable the footer", ft)
			}
		}
	})

	t.Run("no-footer wins", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Footer: config.FooterConfig{Enabled: true}}
		mergeFlags(&buildFlags{footer: footerFlags{text: "Draft", disabled: true}}, cfg)
		if cfg.Footer.Enabled {
			t.Error("--no-footer did not disable the footer")
		}
		if cfg.Footer.Text != "Draft" {
			t.Errorf("Footer.Text = %q, want Draft", cfg.Footer.Text)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveTimeout - Flag over environment
// ---------------------------------------------------------------------------

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flag    string
		env     time.Duration
		want    time.Duration
		wantErr bool
	}{
		{"neither", "", 0, 0, false},
		{"env only", "", 45 * time.Second, 45 * time.Second, false},
		{"flag wins", "2m", 45 * time.Second, 2 * time.Minute, false},
		{"invalid flag", "soon", 0, 0, true},
		{"negative flag", "-1s", 0, 0, true},
		{"zero flag", "0s", 0, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(tt.flag, tt.env)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeout) {
					t.Errorf("error = %v, want ErrInvalidTimeout", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildInput - Config to build request
// ---------------------------------------------------------------------------

func TestBuildInput(t *testing.T) {
	t.Parallel()

	ix := &index.Index{Entries: []index.Entry{{Keyword: "Linux", Location: "1.1"}}}

	t.Run("html only", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Index:      config.IndexConfig{Title: "Books", Lang: "fr", ColorByBook: true, PageBreaks: true, Duplicates: true},
			BookColors: map[int]string{1: "#123456"},
		}
		input, err := buildInput(cfg, ix, fixedNow)
		if err != nil {
			t.Fatalf("buildInput() error = %v", err)
		}

		if input.Index != ix || input.Title != "Books" || input.Lang != "fr" {
			t.Errorf("input = %+v", input)
		}
		if !input.ColorByBook || !input.PageBreaks || !input.Duplicates || input.Report || input.PDF {
			t.Errorf("flags = %+v", input)
		}
		if input.BookColors[1] != "#123456" {
			t.Errorf("BookColors = %v", input.BookColors)
		}
		if input.Page != nil || input.Footer != nil || input.ReportDate != "" {
			t.Errorf("PDF-only fields set: page=%v footer=%v date=%q", input.Page, input.Footer, input.ReportDate)
		}
	})

	t.Run("report date is today", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Index: config.IndexConfig{Report: true}}
		input, err := buildInput(cfg, ix, fixedNow)
		if err != nil {
			t.Fatalf("buildInput() error = %v", err)
		}
		want, _ := dateutil.ResolveDate("auto", fixedNow)
		if input.ReportDate != want {
			t.Errorf("ReportDate = %q, want %q", input.ReportDate, want)
		}
	})

	t.Run("pdf fills page and footer", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Output: config.OutputConfig{PDF: true},
			Page:   config.PageConfig{Size: "a4"},
			Footer: config.FooterConfig{Enabled: true, Position: "center", Date: "auto", Text: "Draft", ShowPageNumber: true},
		}
		input, err := buildInput(cfg, ix, fixedNow)
		if err != nil {
			t.Fatalf("buildInput() error = %v", err)
		}
		if input.Page == nil || input.Page.Size != "a4" {
			t.Errorf("Page = %+v", input.Page)
		}
		if input.Footer == nil || input.Footer.Date == "" || input.Footer.Text != "Draft" || !input.Footer.ShowPageNumber {
			t.Errorf("Footer = %+v", input.Footer)
		}
	})
}

func TestBuildPageSettings(t *testing.T) {
	t.Parallel()

	def := bookindex.DefaultPageSettings()

	got := buildPageSettings(config.DefaultConfig())
	if *got != *def {
		t.Errorf("empty config: %+v, want defaults %+v", *got, *def)
	}

	got = buildPageSettings(&config.Config{Page: config.PageConfig{Orientation: "landscape", Margin: 1.5}})
	if got.Size != def.Size || got.Orientation != "landscape" || got.Margin != 1.5 {
		t.Errorf("partial config: %+v", *got)
	}
}

func TestBuildFooter(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		f, err := buildFooter(&config.Config{Footer: config.FooterConfig{Text: "x"}}, fixedNow)
		if err != nil || f != nil {
			t.Errorf("buildFooter() = %+v, %v; want nil, nil", f, err)
		}
	})

	t.Run("literal date", func(t *testing.T) {
		t.Parallel()

		f, err := buildFooter(&config.Config{Footer: config.FooterConfig{Enabled: true, Date: "Spring 2026"}}, fixedNow)
		if err != nil {
			t.Fatalf("buildFooter() error = %v", err)
		}
		if f.Date != "Spring 2026" {
			t.Errorf("Date = %q, want literal", f.Date)
		}
	})

	t.Run("auto format", func(t *testing.T) {
		t.Parallel()

		f, err := buildFooter(&config.Config{Footer: config.FooterConfig{Enabled: true, Date: "auto:YYYY"}}, fixedNow)
		if err != nil {
			t.Fatalf("buildFooter() error = %v", err)
		}
		if f.Date != "2026" {
			t.Errorf("Date = %q, want 2026", f.Date)
		}
	})
}

func TestBuilderOptions(t *testing.T) {
	t.Parallel()

	if got := builderOptions(config.DefaultConfig(), 0); len(got) != 0 {
		t.Errorf("defaults: %d options, want 0", len(got))
	}

	cfg := &config.Config{Style: "compact", Assets: config.AssetsConfig{BasePath: "assets"}}
	if got := builderOptions(cfg, time.Minute); len(got) != 3 {
		t.Errorf("full config: %d options, want 3", len(got))
	}
}

// ---------------------------------------------------------------------------
// TestLoadIndex - Format selection and error mapping
// ---------------------------------------------------------------------------

func TestLoadIndex(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"entries.txt": "Linux 1.234 An operating system\nWindows 2.101\n",
		"entries.tsv": "Keyword\tLocation\nLinux\t1.234\n",
		"broken.txt":  "Linux 1.234\nno location here\n",
	})

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()

		ix, err := loadIndex(filepath.Join(dir, "entries.txt"), false)
		if err != nil {
			t.Fatalf("loadIndex() error = %v", err)
		}
		if ix.Len() != 2 || ix.Columns() != 3 {
			t.Errorf("got %d entries, %d columns", ix.Len(), ix.Columns())
		}
	})

	t.Run("tsv", func(t *testing.T) {
		t.Parallel()

		ix, err := loadIndex(filepath.Join(dir, "entries.tsv"), true)
		if err != nil {
			t.Fatalf("loadIndex() error = %v", err)
		}
		if ix.Source != index.SourceTSV {
			t.Errorf("Source = %v, want tsv", ix.Source)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := loadIndex(filepath.Join(dir, "nope.txt"), false)
		if !errors.Is(err, ErrReadInput) {
			t.Errorf("error = %v, want ErrReadInput", err)
		}
	})

	t.Run("bad line names the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "broken.txt")
		_, err := loadIndex(path, false)
		if !errors.Is(err, index.ErrMissingLocation) {
			t.Fatalf("error = %v, want ErrMissingLocation", err)
		}
		if !strings.HasPrefix(err.Error(), path) {
			t.Errorf("error %q does not start with the path", err)
		}
	})

	t.Run("tsv header missing", func(t *testing.T) {
		t.Parallel()

		_, err := loadIndex(filepath.Join(dir, "entries.txt"), true)
		if !errors.Is(err, index.ErrImportFormat) {
			t.Errorf("error = %v, want ErrImportFormat", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWriteResult - Output files
// ---------------------------------------------------------------------------

func TestWriteResult(t *testing.T) {
	t.Parallel()

	t.Run("html and pdf siblings", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		res := &bookindex.Result{
			Index:  &bookindex.Output{HTML: []byte("<p>index</p>"), PDF: []byte("%PDF index")},
			Report: &bookindex.Output{HTML: []byte("<p>report</p>")},
		}
		cfg := &config.Config{Output: config.OutputConfig{Dir: dir, Report: "summary.html"}}

		written, err := writeResult(res, cfg)
		if err != nil {
			t.Fatalf("writeResult() error = %v", err)
		}

		want := []string{
			filepath.Join(dir, "index.html"),
			filepath.Join(dir, "index.pdf"),
			filepath.Join(dir, "summary.html"),
		}
		if strings.Join(written, ",") != strings.Join(want, ",") {
			t.Errorf("written = %v, want %v", written, want)
		}
		if got := readFile(t, want[1]); got != "%PDF index" {
			t.Errorf("index.pdf = %q", got)
		}
		if _, err := os.Stat(filepath.Join(dir, "duplicates.html")); !os.IsNotExist(err) {
			t.Error("duplicates.html written without a duplicates document")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		res := &bookindex.Result{Index: &bookindex.Output{HTML: []byte("x")}}
		cfg := &config.Config{Output: config.OutputConfig{Dir: filepath.Join(t.TempDir(), "no", "such")}}

		_, err := writeResult(res, cfg)
		if !errors.Is(err, ErrWriteOutput) {
			t.Errorf("error = %v, want ErrWriteOutput", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunBuild - Whole command with a mock builder
// ---------------------------------------------------------------------------

func TestRunBuild_PDF(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"entries.txt": "Linux 1.234\nlinux 3.12\nWindows 2.101\n",
	})
	out := filepath.Join(dir, "out")
	if err := os.Mkdir(out, 0o750); err != nil {
		t.Fatal(err)
	}

	env, stdout, _ := testEnv(map[string]string{"BOOKINDEX_TIMEOUT": "10s"})
	mock := &mockBuilder{}
	withMockBuilder(env, mock)

	flags := &buildFlags{
		output: out,
		pdf:    true,
		index:  indexFlags{duplicates: true, report: true},
		footer: footerFlags{pageNumber: true},
	}
	if err := runBuild(context.Background(), []string{filepath.Join(dir, "entries.txt")}, flags, env); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}

	if !mock.closed {
		t.Error("builder not closed")
	}
	if mock.opts != 1 {
		t.Errorf("builder got %d options, want 1 (timeout)", mock.opts)
	}
	if mock.input.Index.Len() != 3 || !mock.input.PDF || mock.input.Footer == nil || mock.input.Page == nil {
		t.Errorf("input = %+v", mock.input)
	}

	for _, name := range []string{"index.html", "index.pdf", "duplicates.html", "duplicates.pdf", "report.html", "report.pdf"} {
		path := filepath.Join(out, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
		if !strings.Contains(stdout.String(), "Created "+path) {
			t.Errorf("stdout missing %s:\n%s", name, stdout.String())
		}
	}
}

func TestRunBuild_Quiet(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"entries.txt": "Linux 1.234\n"})
	env, stdout, _ := testEnv(nil)
	withMockBuilder(env, &mockBuilder{})

	flags := &buildFlags{output: dir, common: commonFlags{quiet: true}}
	if err := runBuild(context.Background(), []string{filepath.Join(dir, "entries.txt")}, flags, env); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet run printed %q", stdout.String())
	}
}

func TestRunBuild_Errors(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"entries.txt": "Linux 1.234\n",
		"bad.yaml":    "page:\n  size: tabloid\n",
	})
	input := filepath.Join(dir, "entries.txt")

	tests := []struct {
		name    string
		args    []string
		flags   buildFlags
		vars    map[string]string
		builder *mockBuilder
		wantErr error
	}{
		{"no input", nil, buildFlags{}, nil, nil, ErrNoInput},
		{"bad timeout", []string{input}, buildFlags{timeout: "soon"}, nil, nil, ErrInvalidTimeout},
		{"invalid config file", []string{input}, buildFlags{common: commonFlags{config: filepath.Join(dir, "bad.yaml")}}, nil, nil, config.ErrInvalidValue},
		{"missing config from env", []string{input}, buildFlags{}, map[string]string{"BOOKINDEX_CONFIG": filepath.Join(dir, "none.yaml")}, nil, config.ErrConfigNotFound},
		{"invalid orientation flag", []string{input}, buildFlags{page: pageFlags{orientation: "sideways"}}, nil, nil, config.ErrInvalidValue},
		{"builder failure", []string{input}, buildFlags{output: dir}, nil, &mockBuilder{err: bookindex.ErrBrowserConnect}, bookindex.ErrBrowserConnect},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := testEnv(tt.vars)
			if tt.builder != nil {
				withMockBuilder(env, tt.builder)
			}
			flags := tt.flags
			err := runBuild(context.Background(), tt.args, &flags, env)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runBuild() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
