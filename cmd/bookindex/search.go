package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alnah/go-bookindex/internal/index"
	"github.com/alnah/go-bookindex/internal/logging"
	"github.com/alnah/go-bookindex/internal/markup"
)

// runSearch prints the entries of args[0] matching the query args[1], in
// sorted order.
func runSearch(ctx context.Context, args []string, flags *searchFlags, env *Environment) error {
	switch {
	case len(args) < 2:
		return fmt.Errorf("%w: usage: bookindex search <input> <query>", ErrNoInput)
	case len(args) > 2:
		return fmt.Errorf("%w: %s (quote a query with spaces)", ErrTooManyArgs, strings.Join(args[2:], " "))
	}
	inputPath, query := args[0], args[1]

	scope, err := index.ParseScope(flags.in)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	ix, err := loadIndex(inputPath, flags.tsv || cfg.Index.TSV)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	matches, err := index.Search(ix.Sorted(ix.KeyMode()), query, scope)
	if err != nil {
		return err
	}
	log := logging.For("search")
	log.Info().Str("query", query).Stringer("scope", scope).Int("matches", len(matches)).Msg("search done")

	printMatches(env.Stdout, matches, ix.Columns())
	return nil
}

// printMatches writes one line per entry: "keyword - [location] - comment"
// for a 3-column index, "location - keyword" otherwise. Markup is rendered
// with terminal styles when w is a color terminal.
func printMatches(w io.Writer, entries []index.Entry, columns int) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No matching entries.")
		return
	}

	fields := markup.NewTerminalRenderer(w)
	location := lipgloss.NewRenderer(w).NewStyle().Faint(true)

	for _, e := range entries {
		keyword := fields.Render(e.Keyword)
		loc := location.Render(e.Location)
		if columns == 3 {
			line := fmt.Sprintf("%s - [%s]", keyword, loc)
			if e.HasComment() {
				line += " - " + fields.Render(e.Comment)
			}
			fmt.Fprintln(w, line)
			continue
		}
		fmt.Fprintf(w, "%s - %s\n", loc, keyword)
	}
}
