package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ardnew/cyld/grammar"
	"github.com/ardnew/cyld/log"
	"github.com/ardnew/cyld/pkg"
)

// GrammarSource selects the grammar document used by commands.
type GrammarSource struct {
	// File is the grammar document named with --grammar. An empty File
	// looks up [grammar.DefaultFileName].
	File string
	// SearchPath lists additional directories searched for File.
	SearchPath string
}

// dirs are searched ahead of SearchPath: the working directory, then the
// configuration directory.
func (GrammarSource) dirs() []string {
	return []string{".", pkg.ConfigDir()}
}

// Load locates and reads the grammar. When no file was named and the
// default document cannot be found, the built-in grammar is returned.
func (s GrammarSource) Load(ctx context.Context) (*grammar.Grammar, error) {
	path, err := grammar.Locate(s.File, s.SearchPath, s.dirs()...)
	if errors.Is(err, grammar.ErrGrammarNotFound) && s.File == "" {
		log.DebugContext(ctx, "using built-in grammar",
			slog.String("search", grammar.SearchPath(s.SearchPath, s.dirs()...)),
		)

		return grammar.Default(), nil
	}

	if err != nil {
		return nil, ErrLoadGrammar.Wrap(err)
	}

	g, err := grammar.Load(ctx, path)
	if err != nil {
		return nil, ErrLoadGrammar.Wrap(err)
	}

	log.DebugContext(ctx, "grammar loaded",
		slog.String("path", path),
		slog.String("name", g.Name),
		slog.Int("keywords", len(g.Keywords)),
	)

	return g, nil
}

// exportPath returns the path the grammar is exported to when no output is
// given: the named file, or the default file name in the working directory.
func (s GrammarSource) exportPath() string {
	if s.File != "" {
		return s.File
	}

	return grammar.DefaultFileName
}
