package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

type (
	contextKey struct{}
	grammarKey struct{}
	stdioKey   struct{}
	exitKey    struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithGrammar returns a new context.Context carrying the grammar source
// selected by the global flags.
func WithGrammar(ctx context.Context, src GrammarSource) context.Context {
	return context.WithValue(ctx, grammarKey{}, src)
}

func grammarFrom(ctx context.Context) GrammarSource {
	src, _ := ctx.Value(grammarKey{}).(GrammarSource)

	return src
}

// Stdio holds the streams used by commands. Nil fields select the process
// streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
}

// WithStdio returns a new context.Context carrying the command streams.
func WithStdio(ctx context.Context, s Stdio) context.Context {
	return context.WithValue(ctx, stdioKey{}, s)
}

// StdioFrom returns the command streams stored in ctx, defaulting to the
// process streams.
func StdioFrom(ctx context.Context) Stdio {
	s, _ := ctx.Value(stdioKey{}).(Stdio)
	if s.In == nil {
		s.In = os.Stdin
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}

	return s
}

// WithExit returns a new context.Context carrying the function commands call
// to report a failing status.
func WithExit(ctx context.Context, exit func(code int)) context.Context {
	return context.WithValue(ctx, exitKey{}, exit)
}

func exitFrom(ctx context.Context) func(int) {
	exit, ok := ctx.Value(exitKey{}).(func(int))
	if !ok || exit == nil {
		return os.Exit
	}

	return exit
}

// source is one named input to a command.
type source struct {
	name string
	r    io.Reader
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSources opens each named input once. Paths naming the same file
// through symlinks or relative forms are read once, and every "-" is
// replaced with a single stdin source placed last.
//
// The returned close function releases all opened files.
func openSources(
	paths []string,
	stdin io.Reader,
) (srcs []source, closeAll func(), err error) {
	var files []*os.File

	closeAll = func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	seen := make(map[fileKey]struct{})
	hasStdin := false

	for _, path := range paths {
		if path == stdinSource {
			hasStdin = true

			continue
		}

		file, ok, err := openUniqueFile(path, seen)
		if err != nil {
			closeAll()

			return nil, func() {}, ErrReadSource.
				With(slog.String("file", path)).
				Wrap(err)
		}

		if !ok {
			continue
		}

		files = append(files, file)
		srcs = append(srcs, source{name: path, r: file})
	}

	if hasStdin {
		srcs = append(srcs, source{name: "<stdin>", r: stdin})
	}

	return srcs, closeAll, nil
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
// A duplicate returns false with no error.
func openUniqueFile(
	path string,
	seen map[fileKey]struct{},
) (*os.File, bool, error) {
	// Resolve to absolute path to handle relative path duplicates.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false, err
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false, err
	}

	if key, ok := makeFileKey(info); ok {
		if _, exists := seen[key]; exists {
			return nil, false, nil
		}

		seen[key] = struct{}{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false, err
	}

	return file, true, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
