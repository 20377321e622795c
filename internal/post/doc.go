// Package post holds the pure parts of blog post generation: metadata,
// placeholder substitution, and output filename derivation.
//
// Nothing in this package touches the filesystem. Rendering is literal
// string replacement of three placeholder tokens, applied in order title,
// date, content:
//
//	html := post.Render(template, post.DefaultTokens(), post.Values{
//		Title:   "My First Post",
//		Date:    "2024-01-15",
//		Content: "Hello world.",
//	})
//
// Output filenames are "<YYYY-MM-DD>-<slug>.html", where the date is always
// the generation date and never the post's own date.
package post
