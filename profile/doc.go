// Package profile provides optional runtime profiling for cyld.
//
// Profiling integrates [github.com/pkg/profile] and must be enabled at
// build time with the "pprof" build tag:
//
//	go build -tags pprof .
//	cyld --pprof-mode cpu check main.cyl
//
// Without the tag, [Modes] is empty and [Profiler.Start] always returns a
// no-op [Stopper].
//
// Profiles are written to the configured directory with names matching the
// mode (for example, cpu.pprof) and can be inspected with:
//
//	go tool pprof -http=: cpu.pprof
//
// Building with the tag also registers the [net/http/pprof] handlers on the
// default HTTP mux.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
