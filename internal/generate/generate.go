// Package generate runs the blog post pipeline: load the template, load the
// content, substitute placeholders, derive the output path, write the file.
//
// It is the single entry point shared by the CLI and the MCP server.
package generate

import (
	"time"

	"github.com/gorewood/postgen/internal/config"
	"github.com/gorewood/postgen/internal/post"
	"github.com/gorewood/postgen/internal/store"
)

// Request is one post to generate.
type Request struct {
	Title       string
	Date        string // blank means today
	ContentPath string
	NoClobber   bool
}

// Result describes a rendered, and possibly written, post.
type Result struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Bytes   int    `json:"bytes"`
	Written bool   `json:"written"`
	HTML    string `json:"html,omitempty"`
}

// Generator holds the configuration for a run. It has no mutable state, so
// one Generator may serve any number of requests.
type Generator struct {
	cfg config.Config
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces time.Now, which supplies both the default post date and
// the filename date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator for cfg.
func New(cfg config.Config, opts ...Option) *Generator {
	g := &Generator{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the configuration the Generator was built with.
func (g *Generator) Config() config.Config {
	return g.cfg
}

// OutputPath returns where a post titled title would be written today.
func (g *Generator) OutputPath(title string) string {
	return post.OutputPath(g.cfg.OutputDir, title, g.now())
}

// Render loads the template and content and returns the rendered post and
// its output path without writing anything. The template is loaded first, so
// a missing template is reported even when the content is missing too.
func (g *Generator) Render(req Request) (*Result, error) {
	tmpl, err := store.ReadTemplate(g.cfg.TemplatePath)
	if err != nil {
		return nil, err
	}
	content, err := store.ReadContent(req.ContentPath)
	if err != nil {
		return nil, err
	}

	now := g.now()
	date := post.ResolveDate(req.Date, now)
	html := post.Render(tmpl, g.cfg.Tokens, post.Values{
		Title:   req.Title,
		Date:    date,
		Content: content,
	})

	return &Result{
		Path:  post.OutputPath(g.cfg.OutputDir, req.Title, now),
		Title: req.Title,
		Date:  date,
		Bytes: len(html),
		HTML:  html,
	}, nil
}

// Generate renders the post and writes it to its output path, replacing any
// earlier post with the same path unless req.NoClobber is set.
func (g *Generator) Generate(req Request) (*Result, error) {
	result, err := g.Render(req)
	if err != nil {
		return nil, err
	}
	if err := store.WritePost(result.Path, result.HTML, store.WriteOptions{NoClobber: req.NoClobber}); err != nil {
		return nil, err
	}
	result.Written = true
	return result, nil
}
