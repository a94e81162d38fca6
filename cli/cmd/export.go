package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/cyld/grammar"
	"github.com/ardnew/cyld/log"
)

// Export writes the grammar as a YAML document, or the JSON schema that
// grammar documents must satisfy.
type Export struct {
	Output string `help:"Destination file, or '-' for stdout. Defaults to the grammar file." short:"O"`
	Indent int    `default:"2" help:"Indent width of the YAML document." short:"i"`
	Schema bool   `help:"Write the grammar document JSON schema instead (default: stdout)."`
}

// Run executes the export command.
func (e *Export) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if e.Schema {
		return e.writeSchema(ctx)
	}

	src := grammarFrom(ctx)

	g, err := src.Load(ctx)
	if err != nil {
		return err
	}

	out := StdioFrom(ctx).Out

	if e.Output == stdinSource {
		if err := grammar.Encode(out, g, e.Indent); err != nil {
			return ErrWriteReport.Wrap(err)
		}

		return nil
	}

	path := e.Output
	if path == "" {
		path = src.exportPath()
	}

	if err := grammar.Save(ctx, g, path); err != nil {
		return ErrWriteReport.Wrap(err)
	}

	log.DebugContext(ctx, "grammar exported", slog.String("path", path))

	if _, err := fmt.Fprintf(out, "Grammar saved to %s\n", path); err != nil {
		return ErrWriteReport.Wrap(err)
	}

	return nil
}

// writeSchema writes the grammar schema to Output, or stdout when Output is
// empty or "-".
func (e *Export) writeSchema(ctx context.Context) error {
	schema := grammar.Schema()

	if e.Output == "" || e.Output == stdinSource {
		if _, err := StdioFrom(ctx).Out.Write(schema); err != nil {
			return ErrWriteReport.Wrap(err)
		}

		return nil
	}

	if dir := filepath.Dir(e.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ErrWriteReport.With(slog.String("path", e.Output)).Wrap(err)
		}
	}

	if err := os.WriteFile(e.Output, schema, 0o644); err != nil {
		return ErrWriteReport.With(slog.String("path", e.Output)).Wrap(err)
	}

	log.DebugContext(ctx, "schema exported", slog.String("path", e.Output))

	return nil
}
