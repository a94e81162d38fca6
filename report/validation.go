package report

import (
	"io"

	"github.com/ardnew/cyld/grammar"
)

// WriteValidation renders a grammar validation result.
func WriteValidation(
	w io.Writer,
	result grammar.ValidationResult,
	format Format,
	opts ...Option,
) error {
	if result.Errors == nil {
		result.Errors = []grammar.Finding{}
	}

	if result.Warnings == nil {
		result.Warnings = []grammar.Finding{}
	}

	if format.structured() {
		return encode(w, result, format, makeConfig(opts...))
	}

	p := newPrinter(w)

	if result.Valid {
		p.println(p.pass.Render("✓ Grammar validation passed!"))
	} else {
		p.println(p.fail.Render("✗ Grammar validation failed!"))
	}

	for _, f := range result.Errors {
		p.printf("   %s %s\n", p.fail.Render("Error:"), f.Message)
	}

	for _, f := range result.Warnings {
		p.printf("   %s %s\n", p.warn.Render("Warning:"), f.Message)
	}

	return p.close()
}
