package profile

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Profiler describes a profiling session. The zero value profiles nothing.
type Profiler struct {
	mode  string
	path  string
	quiet bool
}

// Option configures a [Profiler].
type Option func(Profiler) Profiler

// New returns a Profiler configured with opts.
func New(opts ...Option) Profiler {
	var p Profiler

	for _, opt := range opts {
		if opt != nil {
			p = opt(p)
		}
	}

	return p
}

// WithMode sets the profiling mode, one of [Modes].
func WithMode(mode string) Option {
	return func(p Profiler) Profiler {
		p.mode = mode

		return p
	}
}

// WithPath sets the directory profiles are written to.
func WithPath(path string) Option {
	return func(p Profiler) Profiler {
		p.path = path

		return p
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler {
		p.quiet = quiet

		return p
	}
}

// Mode returns the configured profiling mode.
func (p Profiler) Mode() string { return p.mode }

// Start begins profiling and returns the session's [Stopper].
//
// If the binary was built without the pprof tag, or the mode is empty or
// unknown, Start returns a no-op. Both Start and Stop are always safely
// callable.
func (p Profiler) Start() Stopper {
	if p.mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
