package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ardnew/cyld/astgen"
	"github.com/ardnew/cyld/grammar"
	"github.com/ardnew/cyld/log"
)

// Generation targets accepted by --lang.
const (
	LangRust       = "rust"
	LangTypeScript = "ts"
)

// Generate writes AST definitions derived from the grammar.
type Generate struct {
	Lang    []string `default:"rust,ts" enum:"rust,ts" help:"Targets to generate (${enum})." sep:","`
	RustDir string   `default:"${rustDir}" help:"Output directory of the Rust module." type:"path"`
	TSDir   string   `default:"${tsDir}" help:"Output directory of the TypeScript module." name:"ts-dir" type:"path"`
}

// Run executes the generate command.
func (c *Generate) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	g, err := grammarFrom(ctx).Load(ctx)
	if err != nil {
		return err
	}

	return c.generate(ctx, g)
}

func (c *Generate) generate(ctx context.Context, g *grammar.Grammar) error {
	gen := astgen.Generator{Grammar: g}
	out := StdioFrom(ctx).Out

	for _, target := range []struct {
		lang, dir, file string
		render          func() (string, error)
	}{
		{LangRust, c.RustDir, astgen.RustFileName, gen.Rust},
		{LangTypeScript, c.TSDir, astgen.TypeScriptFileName, gen.TypeScript},
	} {
		if !slices.Contains(c.Lang, target.lang) {
			continue
		}

		content, err := target.render()
		if err != nil {
			return ErrGenerate.With(slog.String("lang", target.lang)).Wrap(err)
		}

		path, err := astgen.Write(ctx, target.dir, target.file, content)
		if err != nil {
			return ErrGenerate.With(slog.String("lang", target.lang)).Wrap(err)
		}

		log.DebugContext(ctx, "generated AST definitions",
			slog.String("lang", target.lang),
			slog.String("path", path),
			slog.Int("bytes", len(content)),
		)

		if _, err := fmt.Fprintf(out, "Generated AST file: %s\n", path); err != nil {
			return ErrWriteReport.Wrap(err)
		}
	}

	return nil
}
