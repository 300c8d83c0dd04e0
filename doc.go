// Package bookindex builds printable book indexes from plain-text entries.
//
// An entry line holds a keyword, a location such as "2.101" (book 2, page
// 101) and an optional comment:
//
//	Linux 1.234 An operating system
//	Windows 2.101 *italic* **bold** ;;blue Blue text;;
//
// Keywords and comments may carry a small inline markup: **bold**, *italic*,
// ;;color text;; spans, \* for a literal asterisk and \n for a line break.
// Sorting and grouping ignore the markup.
//
// Basic usage:
//
//	ix, err := bookindex.Parse(file)
//	if err != nil {
//		return err
//	}
//
//	indexer, err := bookindex.NewIndexer()
//	if err != nil {
//		return err
//	}
//	defer indexer.Close()
//
//	res, err := indexer.Build(ctx, bookindex.Input{Index: ix, Duplicates: true})
//	if err != nil {
//		return err
//	}
//	// res.Index.HTML, res.Duplicates.HTML
//
// Set Input.PDF to also render every document with headless Chrome. The
// browser starts on the first PDF and is released by Close.
package bookindex
