package cmd

import (
	"context"

	"github.com/ardnew/cyld/report"
)

// Full lists the grammar, validates it, and generates AST definitions when
// it is valid.
type Full struct {
	Generate `embed:""`
}

// Run executes the full command.
func (f *Full) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	g, err := grammarFrom(ctx).Load(ctx)
	if err != nil {
		return err
	}

	out := StdioFrom(ctx).Out

	if err := report.WriteInfo(out, g, ""); err != nil {
		return ErrWriteReport.Wrap(err)
	}

	valid, err := validate(ctx, g, report.FormatText, report.DefaultIndent)
	if err != nil {
		return err
	}

	if !valid {
		exitFrom(ctx)(1)

		return nil
	}

	return f.generate(ctx, g)
}
