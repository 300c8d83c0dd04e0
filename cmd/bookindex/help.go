package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookindex <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the index documents from an entries file")
	fmt.Fprintln(w, "  search     Print the entries matching a query")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bookindex help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookindex build <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build index.html from an entries file, one entry per line:")
	fmt.Fprintln(w, "  keyword location [comment]     e.g. Linux 1.234 An operating system")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -t, --tsv                 Input is tab-separated (Keyword, Location, Comment)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: current directory)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Documents:")
	fmt.Fprintln(w, "  -d, --duplicates          Also write duplicates.html")
	fmt.Fprintln(w, "  -r, --report              Also write report.html")
	fmt.Fprintln(w, "      --pdf                 Also render every document to PDF")
	fmt.Fprintln(w, "      --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "  -b, --color-books         Color location cells by book")
	fmt.Fprintln(w, "  -p, --page-breaks         Start a new page at every letter")
	fmt.Fprintln(w, "      --title <s>           Heading shown above the index")
	fmt.Fprintln(w, "      --lang <s>            Document language (default: en)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page (PDF):")
	fmt.Fprintln(w, "      --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer (PDF):")
	fmt.Fprintln(w, "      --footer-position <s> Position: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>     Custom footer text")
	fmt.Fprintln(w, "      --footer-date <s>     Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "      --footer-page-number  Show page numbers")
	fmt.Fprintln(w, "      --no-footer           Disable footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   Style name (default, compact) or CSS file")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and templates/ overrides")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             More logging (-vv for debug)")
}

// printSearchUsage prints usage for the search command.
func printSearchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookindex search <input> <query> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the entries whose text contains query, ignoring case and markup.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --tsv                 Input is tab-separated")
	fmt.Fprintln(w, "      --in <scope>          keyword (default), comment, or both")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             More logging")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "search":
		printSearchUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: bookindex version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: bookindex help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
