//go:build !pprof

package profile

// Enabled reports whether the binary was built with profiling support.
const Enabled = false

// Modes returns nil: profiling is compiled out.
func Modes() []string { return nil }

func start(Profiler) Stopper { return ignore{} }
