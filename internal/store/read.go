package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gorewood/postgen/internal/output"
	"github.com/gorewood/postgen/internal/post"
)

// ReadTemplate returns the full text of the template at path.
func ReadTemplate(path string) (string, error) {
	return readText(path, "Template", post.ErrTemplateNotFound)
}

// ReadContent returns the full text of the post content at path.
// The text is returned verbatim.
func ReadContent(path string) (string, error) {
	return readText(path, "Blog content", post.ErrContentNotFound)
}

// readText reads path as text. A missing file is a user error wrapping
// notFound; any other failure is a system error.
func readText(path, kind string, notFound error) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", output.NewUserErrorWithCause(
				fmt.Sprintf("%s file '%s' not found!", kind, path),
				fmt.Errorf("%w: %s", notFound, path),
			)
		}
		return "", output.NewSystemErrorWithCause(
			fmt.Sprintf("failed to read %s file '%s': %v", strings.ToLower(kind), path, err), err)
	}
	return string(data), nil
}
