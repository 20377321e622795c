package post

import "errors"

// Sentinel causes for generation failures. Callers match them with errors.Is.
var (
	// ErrTemplateNotFound means the template file does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrContentNotFound means the post content file does not exist.
	ErrContentNotFound = errors.New("content not found")

	// ErrWriteFailed means the output directory or file could not be written.
	ErrWriteFailed = errors.New("write failed")

	// ErrPostExists means the output file exists and overwriting was refused.
	ErrPostExists = errors.New("post already exists")
)
