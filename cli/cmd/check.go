package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/cyld/log"
	"github.com/ardnew/cyld/report"
	"github.com/ardnew/cyld/syntax"
)

// DefaultFailIf is the exit policy of the check command.
const DefaultFailIf = "errors > 0"

// Check checks the structure of Cyl source files.
type Check struct {
	Format   report.Format `default:"text" enum:"${reportFormatEnum}" help:"Output format (${enum})." short:"o"`
	Indent   int           `default:"2" help:"Indent width of JSON and YAML output." short:"i"`
	Parallel bool          `help:"Run the validators concurrently."`
	FailIf   string        `default:"${failIf}" help:"Exit with status 1 when this expression holds." name:"fail-if"`

	Files []string `arg:"" default:"-" help:"Source files to check, or '-' for stdin." name:"file"`
}

// Outcome summarizes a check run. It is the environment of --fail-if.
type Outcome struct {
	Errors      int  `expr:"errors"`
	Warnings    int  `expr:"warnings"`
	Suggestions int  `expr:"suggestions"`
	Valid       bool `expr:"valid"`
	Files       int  `expr:"files"`
}

// Summarize tallies the results of a check run.
func Summarize(results []report.FileResult) Outcome {
	o := Outcome{Valid: true, Files: len(results)}

	for _, r := range results {
		o.Errors += r.Errors()
		o.Warnings += r.Warnings()
		o.Suggestions += len(r.Suggestions)
		o.Valid = o.Valid && r.Valid
	}

	return o
}

// CompileFailIf compiles an exit policy expression over [Outcome].
// An empty expression selects [DefaultFailIf].
func CompileFailIf(source string) (*vm.Program, error) {
	if source == "" {
		source = DefaultFailIf
	}

	program, err := expr.Compile(source, expr.Env(Outcome{}), expr.AsBool())
	if err != nil {
		return nil, ErrFailIf.Wrap(err).With(slog.String("expr", source))
	}

	return program, nil
}

// Fails reports whether the policy program holds for o.
func Fails(program *vm.Program, o Outcome) (bool, error) {
	out, err := expr.Run(program, o)
	if err != nil {
		return false, ErrFailIf.Wrap(err)
	}

	fail, _ := out.(bool)

	return fail, nil
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	// Compile the policy first so a bad expression fails before any output.
	policy, err := CompileFailIf(c.FailIf)
	if err != nil {
		return err
	}

	g, err := grammarFrom(ctx).Load(ctx)
	if err != nil {
		return err
	}

	stdio := StdioFrom(ctx)

	srcs, closeAll, err := openSources(c.Files, stdio.In)
	if err != nil {
		return err
	}
	defer closeAll()

	checker := syntax.NewChecker(g,
		syntax.WithParallel(c.Parallel),
		syntax.WithLogger(log.Default()),
	)

	results := make([]report.FileResult, 0, len(srcs))

	for _, src := range srcs {
		data, err := io.ReadAll(src.r)
		if err != nil {
			return ErrReadSource.With(slog.String("file", src.name)).Wrap(err)
		}

		results = append(results, report.FileResult{
			File:   src.name,
			Result: checker.CheckContext(ctx, string(data)),
		})
	}

	err = report.WriteResults(stdio.Out, results, c.Format, report.WithIndent(c.Indent))
	if err != nil {
		return ErrWriteReport.Wrap(err)
	}

	outcome := Summarize(results)

	fail, err := Fails(policy, outcome)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "check complete",
		slog.Int("files", outcome.Files),
		slog.Int("errors", outcome.Errors),
		slog.Int("warnings", outcome.Warnings),
		slog.Bool("fail", fail),
	)

	if fail {
		exitFrom(ctx)(1)
	}

	return nil
}
