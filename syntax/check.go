package syntax

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ardnew/cyld/grammar"
	"github.com/ardnew/cyld/log"
)

// Checker runs every check pass against one grammar.
// It is immutable after construction and safe for concurrent use.
type Checker struct {
	scanner *Scanner
	vocab   vocabulary
	config
}

// NewChecker returns a [Checker] for g. A nil grammar behaves as an empty
// one.
func NewChecker(g *grammar.Grammar, opts ...Option) *Checker {
	cfg := apply(config{}, opts...)
	cfg.rules = cloneRules(cfg.rules)

	return &Checker{
		scanner: NewScanner(g),
		vocab:   makeVocabulary(g),
		config:  cfg,
	}
}

// Check runs every pass over source using a [Checker] built for g.
func Check(source string, g *grammar.Grammar, opts ...Option) Result {
	return NewChecker(g, opts...).Check(source)
}

// Tokenize splits source into tokens.
func (c *Checker) Tokenize(source string) []Token {
	return c.scanner.Tokenize(source)
}

// Check runs every pass over source.
func (c *Checker) Check(source string) Result {
	return c.CheckContext(log.DefaultContextProvider(), source)
}

// CheckContext runs every pass over source. The context is only passed to
// the logger; a check cannot be canceled.
func (c *Checker) CheckContext(ctx context.Context, source string) Result {
	start := time.Now()
	tokens := c.scanner.Tokenize(source)

	c.logger.TraceContext(ctx, "tokenized source",
		slog.Int("tokens", len(tokens)),
		slog.Int("bytes", len(source)))

	var f findings
	if c.parallel {
		f = c.runParallel(tokens)
	} else {
		f = c.runSequential(tokens)
	}

	r := f.merge()

	c.logger.DebugContext(ctx, "syntax check complete",
		slog.Bool("valid", r.Valid),
		slog.Int("errors", r.Errors()),
		slog.Int("warnings", r.Warnings()),
		slog.Int("suggestions", len(r.Suggestions)),
		slog.Bool("parallel", c.parallel),
		slog.Duration("elapsed", time.Since(start)))

	return r
}

// findings holds each pass's output in its own slot.
type findings struct {
	brackets    []Issue
	keywords    []Issue
	suggestions []Suggestion
	operators   []Issue
	termination []Issue
}

func (c *Checker) runSequential(tokens []Token) findings {
	var f findings

	f.brackets = CheckBrackets(tokens)
	f.keywords, f.suggestions = c.vocab.checkKeywords(tokens, c.rules)
	f.operators = c.vocab.checkOperators(tokens)
	f.termination = c.vocab.checkTermination(tokens)

	return f
}

func (c *Checker) runParallel(tokens []Token) findings {
	var (
		f  findings
		eg errgroup.Group
	)

	eg.Go(func() error {
		f.brackets = CheckBrackets(tokens)

		return nil
	})
	eg.Go(func() error {
		f.keywords, f.suggestions = c.vocab.checkKeywords(tokens, c.rules)

		return nil
	})
	eg.Go(func() error {
		f.operators = c.vocab.checkOperators(tokens)

		return nil
	})
	eg.Go(func() error {
		f.termination = c.vocab.checkTermination(tokens)

		return nil
	})

	// Passes are pure and always return nil; Wait only joins them.
	_ = eg.Wait()

	return f
}

// merge concatenates issues in the order brackets, keywords, operators,
// termination.
func (f findings) merge() Result {
	issues := make([]Issue, 0,
		len(f.brackets)+len(f.keywords)+len(f.operators)+len(f.termination))
	issues = append(issues, f.brackets...)
	issues = append(issues, f.keywords...)
	issues = append(issues, f.operators...)
	issues = append(issues, f.termination...)

	suggestions := make([]Suggestion, 0, len(f.suggestions))
	suggestions = append(suggestions, f.suggestions...)

	r := Result{Issues: issues, Suggestions: suggestions}
	r.Valid = r.Errors() == 0

	return r
}
