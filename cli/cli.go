package cli

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/cyld/cli/cmd"
	"github.com/ardnew/cyld/grammar"
	"github.com/ardnew/cyld/pkg"
	"github.com/ardnew/cyld/report"
)

// CLI is the top-level command-line interface for cyld.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version information and exit." short:"V"`

	Grammar     string `help:"Grammar document (default: ${grammarFile} in the search path)." placeholder:"FILE" short:"g"`
	GrammarPath string `env:"CYLD_GRAMMAR_PATH" help:"Directories searched for the grammar document." name:"grammar-path" placeholder:"DIRS"`

	Check    cmd.Check    `cmd:"" help:"Check the structure of Cyl source files."`
	Tokens   cmd.Tokens   `cmd:"" help:"Print the token stream of a Cyl source file."`
	Validate cmd.Validate `cmd:"" help:"Validate the grammar."`
	Generate cmd.Generate `cmd:"" help:"Generate AST definitions."`
	Info     cmd.Info     `cmd:"" help:"Display language information."`
	Export   cmd.Export   `cmd:"" help:"Write the grammar as a YAML document."`
	Full     cmd.Full     `cmd:"" help:"Run complete validation and generation."`
	Init     cmd.Init     `cmd:"" help:"Initialize configuration file."`
}

// GrammarPathEnv names the environment variable holding the grammar search
// path.
const GrammarPathEnv = "CYLD_GRAMMAR_PATH"

// Run executes the cyld CLI with the given context and arguments.
//
// exit is called with a non-zero status when a command detects a failure
// (invalid source, invalid grammar) and by the parser after printing help or
// version information. Callers that must keep the process alive pass a
// function that records the status instead of terminating.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath + ".yaml",
		cmd.CacheIdentifier:  cacheDir(),
		"version":            pkg.Name + " " + pkg.Version,
		"grammarFile":        grammar.DefaultFileName,
		"reportFormatEnum":   strings.Join(slices.Collect(report.Formats()), ","),
		"failIf":             cmd.DefaultFailIf,
		"rustDir":            filepath.Join("compiler", "src"),
		"tsDir":              filepath.Join("design", "src", "generated"),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	groups := []kong.Group{cli.Log.group()}
	if g := cli.Pprof.group(); g.Key != "" {
		groups = append(groups, g)
	}

	stdio := cmd.StdioFrom(ctx)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdio.Out, os.Stderr),
		kong.ExplicitGroups(groups),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(cmd.ConfigSection), configFilePath+".yaml"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithExit(ctx, exit)
	ctx = cmd.WithGrammar(ctx, cmd.GrammarSource{
		File:       cli.Grammar,
		SearchPath: cli.GrammarPath,
	})

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
