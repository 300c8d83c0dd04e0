// Package markup implements the inline markup language used in index
// keywords and comments.
//
// # Syntax
//
//	**text**          bold
//	*text*            italic (a single lone asterisk stays literal)
//	\*                literal asterisk
//	;;NAME text;;     text colored with the CSS color NAME
//	\n                line break
//	\\n               literal "\n"
//
// Color spans do not nest: the next ";;" after an opener always closes it.
// A string holding a single ";;" has no span at all and the marker is
// dropped.
//
// # Stages
//
// Every consumer goes through the same tokenizer (Lex), so sort keys,
// group labels and rendered output can never disagree about what is markup:
//
//	Lex ──► resolve ──► RenderHTML      (document cells, with diagnostics)
//	  │             └─► TerminalRenderer (search results)
//	  └───► Normalize ─► SortKey, Classify
//
// Rendering is best-effort. Malformed markup never fails a render; it is
// dropped or emitted literally and reported as a *MarkupError.
package markup
