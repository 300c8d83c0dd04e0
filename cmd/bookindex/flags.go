package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose int
}

// indexFlags holds the layout and document selection flags.
type indexFlags struct {
	tsv         bool
	colorByBook bool
	pageBreaks  bool
	duplicates  bool
	report      bool
	title       string
	lang        string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	position   string
	text       string
	date       string
	pageNumber bool
	disabled   bool
}

// assetFlags holds asset-related flags.
type assetFlags struct {
	style     string // name or .css path
	assetPath string // override asset directory
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	output  string
	timeout string
	pdf     bool
	index   indexFlags
	page    pageFlags
	footer  footerFlags
	assets  assetFlags
}

func (f *buildFlags) commonOptions() *commonFlags { return &f.common }

// searchFlags holds all flags for the search command.
type searchFlags struct {
	common commonFlags
	tsv    bool
	in     string
}

func (f *searchFlags) commonOptions() *commonFlags { return &f.common }

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.CountVarP(&f.verbose, "verbose", "v", "more logging (repeatable)")
}

// addIndexFlags adds index layout flags to a FlagSet.
func addIndexFlags(fs *flag.FlagSet, f *indexFlags) {
	fs.BoolVarP(&f.tsv, "tsv", "t", false, "input is tab-separated with a header row")
	fs.BoolVarP(&f.colorByBook, "color-books", "b", false, "color location cells by book")
	fs.BoolVarP(&f.pageBreaks, "page-breaks", "p", false, "start a new page at every letter")
	fs.BoolVarP(&f.duplicates, "duplicates", "d", false, "also write the duplicates document")
	fs.BoolVarP(&f.report, "report", "r", false, "also write the summary report")
	fs.StringVar(&f.title, "title", "", "heading shown above the index")
	fs.StringVar(&f.lang, "lang", "", "document language (default: en)")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.size, "page-size", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.text, "footer-text", "", "custom footer text")
	fs.StringVar(&f.date, "footer-date", "", "footer date (\"auto\" = today)")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable footer")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, env *Environment) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.timeout, "timeout", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.pdf, "pdf", false, "also render every document to PDF")

	addCommonFlags(fs, &f.common)
	addIndexFlags(fs, &f.index)
	addPageFlags(fs, &f.page)
	addFooterFlags(fs, &f.footer)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printBuildUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseSearchFlags parses search command flags and returns positional args.
func parseSearchFlags(args []string, env *Environment) (*searchFlags, []string, error) {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &searchFlags{}

	addCommonFlags(fs, &f.common)
	fs.BoolVarP(&f.tsv, "tsv", "t", false, "input is tab-separated with a header row")
	fs.StringVar(&f.in, "in", "keyword", "where to search: keyword, comment, both")

	fs.Usage = func() { printSearchUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
