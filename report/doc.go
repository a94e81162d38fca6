// Package report renders syntax check results, grammar validation results,
// and grammar listings.
//
// Structured formats ([FormatJSON], [FormatYAML], [FormatCBOR]) encode the
// result values directly. [FormatText] is a human-readable layout styled
// with lipgloss; styling is dropped when the writer is not a terminal.
package report
