package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/cyld/grammar"
	"github.com/ardnew/cyld/log"
	"github.com/ardnew/cyld/report"
)

// Validate checks the internal consistency of the grammar.
type Validate struct {
	Format report.Format `default:"text" enum:"${reportFormatEnum}" help:"Output format (${enum})." short:"o"`
	Indent int           `default:"2" help:"Indent width of JSON and YAML output." short:"i"`
}

// Run executes the validate command.
func (v *Validate) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	g, err := grammarFrom(ctx).Load(ctx)
	if err != nil {
		return err
	}

	valid, err := validate(ctx, g, v.Format, v.Indent)
	if err != nil {
		return err
	}

	if !valid {
		exitFrom(ctx)(1)
	}

	return nil
}

// validate writes the validation report of g and reports whether g is valid.
func validate(
	ctx context.Context,
	g *grammar.Grammar,
	format report.Format,
	indent int,
) (bool, error) {
	result := grammar.Validate(g)

	err := report.WriteValidation(
		StdioFrom(ctx).Out, result, format, report.WithIndent(indent),
	)
	if err != nil {
		return false, ErrWriteReport.Wrap(err)
	}

	log.DebugContext(ctx, "grammar validated",
		slog.Bool("valid", result.Valid),
		slog.Int("errors", len(result.Errors)),
		slog.Int("warnings", len(result.Warnings)),
	)

	return result.Valid, nil
}
