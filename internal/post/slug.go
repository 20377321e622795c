package post

import (
	"path/filepath"
	"strings"
	"time"
)

// Slug lower-cases title, turns spaces into hyphens, then drops every byte
// that is not a-z, 0-9 or '-'. A title with no ASCII letters or digits
// yields "".
func Slug(title string) string {
	lowered := strings.ReplaceAll(strings.ToLower(title), " ", "-")

	var b strings.Builder
	b.Grow(len(lowered))
	for i := 0; i < len(lowered); i++ {
		c := lowered[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Filename returns "<YYYY-MM-DD>-<slug>.html" for title on the day of now.
func Filename(title string, now time.Time) string {
	return now.Format(DateLayout) + "-" + Slug(title) + ".html"
}

// OutputPath joins Filename with the output directory.
// Same title on the same day always gives the same path; there is no
// collision handling here.
func OutputPath(dir, title string, now time.Time) string {
	return filepath.Join(dir, Filename(title, now))
}
