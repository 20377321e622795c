package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/gorewood/postgen/internal/output"
	"github.com/gorewood/postgen/internal/post"
)

// WriteOptions control how WritePost treats an existing file.
type WriteOptions struct {
	// NoClobber refuses to replace an existing file. The default is to
	// overwrite silently.
	NoClobber bool
}

// WritePost creates any missing parent directories of path and writes html
// to it. The write goes through a temp file and rename, so a failed write
// never leaves a half-written post behind.
func WritePost(path, html string, opts WriteOptions) error {
	if opts.NoClobber {
		if _, err := os.Stat(path); err == nil {
			return output.NewConflictErrorWithCause(
				fmt.Sprintf("post '%s' already exists", path),
				fmt.Errorf("%w: %s", post.ErrPostExists, path),
			)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return writeError("failed to create output directory '"+dir+"'", err)
	}

	if err := atomic.WriteFile(path, strings.NewReader(html)); err != nil {
		return writeError("failed to write '"+path+"'", err)
	}

	// atomic.WriteFile leaves new files with the temp file's 0600 mode.
	if err := os.Chmod(path, 0o644); err != nil {
		return writeError("failed to set permissions on '"+path+"'", err)
	}
	return nil
}

func writeError(message string, err error) error {
	return output.NewSystemErrorWithCause(message+": "+err.Error(), errors.Join(post.ErrWriteFailed, err))
}
