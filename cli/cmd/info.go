package cmd

import (
	"context"

	"github.com/ardnew/cyld/report"
)

// Info lists the grammar's keywords, operators, syntax rules and types.
type Info struct {
	Filter string `arg:"" help:"Only list entries that fuzzy match this pattern." optional:""`
}

// Run executes the info command.
func (i *Info) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	g, err := grammarFrom(ctx).Load(ctx)
	if err != nil {
		return err
	}

	if err := report.WriteInfo(StdioFrom(ctx).Out, g, i.Filter); err != nil {
		return ErrWriteReport.Wrap(err)
	}

	return nil
}
