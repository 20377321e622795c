// Package store reads templates and post content from disk and writes
// rendered posts.
//
// Failures are returned as *output.ExitError values whose cause is one of
// the post package sentinels, so a caller can both exit with the right code
// and branch with errors.Is(err, post.ErrContentNotFound).
package store
