package syntax

import (
	"github.com/ardnew/cyld/grammar"
	"github.com/ardnew/cyld/log"
)

// Option configures a [Checker].
type Option func(config) config

type config struct {
	parallel bool
	logger   log.Logger
	rules    map[grammar.Category]ContextRule
}

func apply(c config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithParallel runs the check passes concurrently. Results are merged in
// the same order as a sequential run.
func WithParallel(enable bool) Option {
	return func(c config) config {
		c.parallel = enable

		return c
	}
}

// WithLogger sets the logger that receives trace and debug records for
// each check. The zero [log.Logger] discards them.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

// WithContextRule adds or replaces the rule for keywords of category cat.
func WithContextRule(cat grammar.Category, rule ContextRule) Option {
	return func(c config) config {
		c.rules = cloneRules(c.rules)
		c.rules[cat] = rule

		return c
	}
}

// WithoutContextRule removes the rule for keywords of category cat.
func WithoutContextRule(cat grammar.Category) Option {
	return func(c config) config {
		c.rules = cloneRules(c.rules)
		delete(c.rules, cat)

		return c
	}
}
