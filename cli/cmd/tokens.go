package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/cyld/report"
	"github.com/ardnew/cyld/syntax"
)

// Tokens prints the token stream of a Cyl source file.
type Tokens struct {
	Format report.Format `default:"text" enum:"${reportFormatEnum}" help:"Output format (${enum})." short:"o"`
	Indent int           `default:"2" help:"Indent width of JSON and YAML output." short:"i"`

	File string `arg:"" default:"-" help:"Source file to tokenize, or '-' for stdin." name:"file"`
}

// Run executes the tokens command.
func (c *Tokens) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	g, err := grammarFrom(ctx).Load(ctx)
	if err != nil {
		return err
	}

	stdio := StdioFrom(ctx)

	srcs, closeAll, err := openSources([]string{c.File}, stdio.In)
	if err != nil {
		return err
	}
	defer closeAll()

	data, err := io.ReadAll(srcs[0].r)
	if err != nil {
		return ErrReadSource.With(slog.String("file", srcs[0].name)).Wrap(err)
	}

	tokens := syntax.Tokenize(string(data), g)

	err = report.WriteTokens(stdio.Out, tokens, c.Format, report.WithIndent(c.Indent))
	if err != nil {
		return ErrWriteReport.Wrap(err)
	}

	return nil
}
