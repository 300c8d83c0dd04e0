package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	bookindex "github.com/alnah/go-bookindex"
	"github.com/alnah/go-bookindex/internal/config"
	"github.com/alnah/go-bookindex/internal/dateutil"
	"github.com/alnah/go-bookindex/internal/fileutil"
	"github.com/alnah/go-bookindex/internal/hints"
	"github.com/alnah/go-bookindex/internal/index"
	"github.com/alnah/go-bookindex/internal/logging"
)

// Default output file names.
const (
	defaultIndexFile      = "index.html"
	defaultDuplicatesFile = "duplicates.html"
	defaultReportFile     = "report.html"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// runBuild loads the entries, builds the requested documents and writes
// them to the output directory.
func runBuild(ctx context.Context, args []string, flags *buildFlags, env *Environment) error {
	inputPath, err := singleInput(args)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Environ())

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout)
	if err != nil {
		return err
	}

	ix, err := loadIndex(inputPath, cfg.Index.TSV)
	if err != nil {
		return err
	}

	input, err := buildInput(cfg, ix, env.Now())
	if err != nil {
		return err
	}

	builder, err := env.NewBuilder(builderOptions(cfg, timeout)...)
	if err != nil {
		return err
	}
	defer func() { _ = builder.Close() }()

	res, err := builder.Build(ctx, input)
	if err != nil {
		return err
	}
	reportDiagnostics(res.Index.Diagnostics)

	written, err := writeResult(res, cfg)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		for _, path := range written {
			fmt.Fprintf(env.Stdout, "Created %s\n", path)
		}
	}
	return nil
}

// singleInput returns the one positional argument.
func singleInput(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(args[1:], " "))
	}
}

// loadConfig loads the config named by the flag, else by BOOKINDEX_CONFIG,
// else returns the defaults.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log := logging.For("config")
	log.Debug().Str("name", name).Msg("config loaded")
	return cfg, nil
}

// mergeFlags applies CLI flags over config values (CLI wins). Only flags
// that were set override; a false bool never turns a config option off.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.pdf {
		cfg.Output.PDF = true
	}

	idx := flags.index
	cfg.Index.TSV = cfg.Index.TSV || idx.tsv
	cfg.Index.ColorByBook = cfg.Index.ColorByBook || idx.colorByBook
	cfg.Index.PageBreaks = cfg.Index.PageBreaks || idx.pageBreaks
	cfg.Index.Duplicates = cfg.Index.Duplicates || idx.duplicates
	cfg.Index.Report = cfg.Index.Report || idx.report
	if idx.title != "" {
		cfg.Index.Title = idx.title
	}
	if idx.lang != "" {
		cfg.Index.Lang = idx.lang
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}

	// Any footer flag turns the footer on.
	ft := flags.footer
	if ft.position != "" {
		cfg.Footer.Position = ft.position
		cfg.Footer.Enabled = true
	}
	if ft.text != "" {
		cfg.Footer.Text = ft.text
		cfg.Footer.Enabled = true
	}
	if ft.date != "" {
		cfg.Footer.Date = ft.date
		cfg.Footer.Enabled = true
	}
	if ft.pageNumber {
		cfg.Footer.ShowPageNumber = true
		cfg.Footer.Enabled = true
	}
	if ft.disabled {
		cfg.Footer.Enabled = false
	}

	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// resolveTimeout returns the --timeout value, else the BOOKINDEX_TIMEOUT
// value. Zero means the library default.
func resolveTimeout(flagValue string, envTimeout time.Duration) (time.Duration, error) {
	if flagValue == "" {
		return envTimeout, nil
	}
	d, err := time.ParseDuration(flagValue)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q (use a positive duration such as 30s or 2m)", ErrInvalidTimeout, flagValue)
	}
	return d, nil
}

// loadIndex reads path as plain text or, with tsv, as a tabular export.
func loadIndex(path string, tsv bool) (*index.Index, error) {
	load := index.ParseFile
	if tsv {
		load = index.LoadTSVFile
	}

	ix, err := load(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log := logging.For("build")
	log.Info().
		Str("input", path).
		Int("entries", ix.Len()).
		Int("columns", ix.Columns()).
		Str("source", ix.Source.String()).
		Msg("index loaded")
	return ix, nil
}

// buildInput converts the merged config into a build request.
func buildInput(cfg *config.Config, ix *index.Index, now time.Time) (bookindex.Input, error) {
	input := bookindex.Input{
		Index:       ix,
		Title:       cfg.Index.Title,
		Lang:        cfg.Index.Lang,
		ColorByBook: cfg.Index.ColorByBook,
		BookColors:  cfg.BookColors,
		PageBreaks:  cfg.Index.PageBreaks,
		Duplicates:  cfg.Index.Duplicates,
		Report:      cfg.Index.Report,
		PDF:         cfg.Output.PDF,
	}

	if input.Report {
		date, err := dateutil.ResolveDate("auto", now)
		if err != nil {
			return input, err
		}
		input.ReportDate = date
	}

	if input.PDF {
		input.Page = buildPageSettings(cfg)
		footer, err := buildFooter(cfg, now)
		if err != nil {
			return input, err
		}
		input.Footer = footer
	}
	return input, nil
}

// buildPageSettings fills unset page values with the defaults.
func buildPageSettings(cfg *config.Config) *bookindex.PageSettings {
	page := bookindex.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin > 0 {
		page.Margin = cfg.Page.Margin
	}
	return page
}

// buildFooter returns nil when the footer is disabled.
func buildFooter(cfg *config.Config, now time.Time) (*bookindex.Footer, error) {
	if !cfg.Footer.Enabled {
		return nil, nil
	}
	date, err := dateutil.ResolveDate(cfg.Footer.Date, now)
	if err != nil {
		return nil, fmt.Errorf("footer date: %w", err)
	}
	return &bookindex.Footer{
		Position:       cfg.Footer.Position,
		ShowPageNumber: cfg.Footer.ShowPageNumber,
		Date:           date,
		Text:           cfg.Footer.Text,
	}, nil
}

// builderOptions maps the config onto Indexer options.
func builderOptions(cfg *config.Config, timeout time.Duration) []bookindex.Option {
	var opts []bookindex.Option
	if timeout > 0 {
		opts = append(opts, bookindex.WithTimeout(timeout))
	}
	if cfg.Style != "" {
		opts = append(opts, bookindex.WithStyle(cfg.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, bookindex.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts
}

// reportDiagnostics logs one warning per markup problem.
func reportDiagnostics(diags []*bookindex.MarkupError) {
	log := logging.For("markup")
	for _, d := range diags {
		log.Warn().Msgf("%v%s", d, hints.ForMarkup(d.Reason))
	}
}

// writeResult writes every built document and returns the paths written.
func writeResult(res *bookindex.Result, cfg *config.Config) ([]string, error) {
	dir := cfg.Output.Dir
	if dir == "" {
		dir = "."
	}

	docs := []struct {
		name string
		out  *bookindex.Output
	}{
		{orDefault(cfg.Output.Index, defaultIndexFile), res.Index},
		{orDefault(cfg.Output.Duplicates, defaultDuplicatesFile), res.Duplicates},
		{orDefault(cfg.Output.Report, defaultReportFile), res.Report},
	}

	log := logging.For("build")
	var written []string
	for _, doc := range docs {
		if doc.out == nil {
			continue
		}

		htmlPath := filepath.Join(dir, doc.name)
		if err := writeFile(htmlPath, doc.out.HTML); err != nil {
			return written, err
		}
		written = append(written, htmlPath)
		log.Info().Str("path", htmlPath).Int("entries", doc.out.Entries).Int("groups", doc.out.Groups).Msg("wrote document")

		if doc.out.PDF == nil {
			continue
		}
		pdfPath := strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ".pdf"
		if err := writeFile(pdfPath, doc.out.PDF); err != nil {
			return written, err
		}
		written = append(written, pdfPath)
		log.Info().Str("path", pdfPath).Int("pages", doc.out.Pages).Msg("wrote PDF")
	}
	return written, nil
}

func writeFile(path string, data []byte) error {
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
