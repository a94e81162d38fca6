package report

// DefaultIndent is the indent width of JSON and YAML output.
const DefaultIndent = 2

// Option configures rendering.
type Option func(config) config

type config struct {
	indent int
}

func makeConfig(opts ...Option) config {
	return apply(config{indent: DefaultIndent}, opts...)
}

func apply(c config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithIndent sets the indent width of JSON and YAML output.
// Non-positive widths select [DefaultIndent].
func WithIndent(n int) Option {
	return func(c config) config {
		if n <= 0 {
			n = DefaultIndent
		}

		c.indent = n

		return c
	}
}
