// Package cmd implements the cyld subcommands: check, tokens, validate,
// generate, info, export, full and init.
//
// Commands receive their environment through the context: the grammar
// source ([WithGrammar]), the standard streams ([WithStdio]) and the
// function used to report a failing exit status ([WithExit]). A command
// that finds a failure it was asked to detect calls the exit function
// with status 1 and returns nil; Go errors are reserved for faults such as
// unreadable input.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"

	// ConfigSection is the top-level mapping of the YAML configuration file
	// holding flag values.
	ConfigSection = "config"
)
