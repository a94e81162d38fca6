// Package cli contains the command line interface for cyld.
//
// # Usage
//
//	cyld [flags] <command> [args]
//
// Commands:
//   - check: check the structure of Cyl source files
//   - tokens: print the token stream of a source file
//   - validate: validate the grammar
//   - generate: write Rust and TypeScript AST definitions
//   - info: list the grammar's keywords, operators, rules and types
//   - export: write the grammar as YAML
//   - full: info, validate, then generate when the grammar is valid
//   - init: write the configuration file from the current flag values
//
// # Grammar Selection
//
// The grammar document is named with --grammar (default "syntax.yaml") and
// looked up in the working directory, the configuration directory, then the
// directories listed in --grammar-path or $CYLD_GRAMMAR_PATH. When no
// document is named and none is found, the built-in Cyl grammar is used.
//
// # Configuration
//
// Flag values are also read from config.json and config.yaml in the
// configuration directory ($XDG_CONFIG_HOME/cyld on Linux). The YAML file
// holds a "config" mapping written by the init command:
//
//	config:
//	  grammar-path: /usr/share/cyl
//	  log-level: debug
//
// # Exit Status
//
// check exits 1 when its --fail-if expression holds (default "errors > 0");
// validate and full exit 1 when the grammar is invalid.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text logs and indent JSON logs
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: the pprof
//     directory under the cache directory)
package cli
