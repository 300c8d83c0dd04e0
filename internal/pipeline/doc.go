// Package pipeline turns a sorted index into HTML.
//
// Stages:
//   - Assembler lays out entries as rows with a header at each group change,
//     rendering keywords and comments through package markup
//   - DocumentTemplate wraps a body fragment in the embedded HTML skeleton
//   - CSSInjection adds the stylesheet as a <style> block
//   - BuildReport and GoldmarkConverter produce the summary report
//
// PDF rendering is handled by the root bookindex package with headless
// Chrome (go-rod).
package pipeline
