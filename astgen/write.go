package astgen

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ardnew/cyld/pkg"
)

// Write stores content as the file name in dir, creating dir if needed,
// and returns the path written.
func Write(ctx context.Context, dir, name, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", pkg.ErrWriteOutput.Wrap(err)
	}

	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", pkg.ErrWriteOutput.Wrap(err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", pkg.ErrWriteOutput.Wrap(err)
	}

	return path, nil
}
