package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/postgen/internal/config"
	"github.com/gorewood/postgen/internal/generate"
	"github.com/gorewood/postgen/internal/post"
)

// --- Test helpers ---

type testSite struct {
	dir     string
	content string
	outDir  string
	gen     *generate.Generator
}

func makeTestSite(t *testing.T, tmpl, content string) testSite {
	t.Helper()
	dir := t.TempDir()
	site := testSite{
		dir:     dir,
		content: filepath.Join(dir, "post.txt"),
		outDir:  filepath.Join(dir, "generated"),
	}
	templatePath := filepath.Join(dir, "template.html")
	if err := os.WriteFile(templatePath, []byte(tmpl), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(site.content, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.TemplatePath = templatePath
	cfg.OutputDir = site.outDir
	site.gen = generate.New(cfg, generate.WithClock(func() time.Time {
		return time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local)
	}))
	return site
}

func TestNewServer(t *testing.T) {
	site := makeTestSite(t, "", "")
	if NewServer("test", site.gen) == nil {
		t.Fatal("NewServer() returned nil")
	}
}

// --- derive_filename ---

func TestHandleDeriveFilename(t *testing.T) {
	site := makeTestSite(t, "", "")
	handler := handleDeriveFilename(site.gen)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, DeriveFilenameInput{Title: "Hello, World!"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Filename != "2024-01-15-hello-world.html" {
		t.Errorf("Filename = %q", out.Filename)
	}
	if out.Path != filepath.Join(site.outDir, out.Filename) {
		t.Errorf("Path = %q", out.Path)
	}
}

// --- render_post ---

func TestHandleRenderPost(t *testing.T) {
	site := makeTestSite(t, "<h1>{{title}}</h1><p>{{date}}</p>{{blog_content}}", "Hello world.")
	handler := handleRenderPost(site.gen)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, RenderPostInput{
		Title:       "My First Post",
		ContentPath: site.content,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.HTML != "<h1>My First Post</h1><p>2024-01-15</p>Hello world." {
		t.Errorf("HTML = %q", out.HTML)
	}
	if _, err := os.Stat(out.Path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("render_post must not write %s", out.Path)
	}
}

func TestHandleRenderPost_MissingContentPath(t *testing.T) {
	site := makeTestSite(t, "", "")
	handler := handleRenderPost(site.gen)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, RenderPostInput{Title: "x"})
	if err == nil {
		t.Fatal("expected error for empty content_path")
	}
}

// --- generate_post ---

func TestHandleGeneratePost(t *testing.T) {
	site := makeTestSite(t, "{{title}} / {{date}} / {{blog_content}}", "body")
	handler := handleGeneratePost(site.gen)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, GeneratePostInput{
		Title:       "Release Notes",
		Date:        "2023-12-01",
		ContentPath: site.content,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantPath := filepath.Join(site.outDir, "2024-01-15-release-notes.html")
	if out.Path != wantPath {
		t.Errorf("Path = %q, want %q", out.Path, wantPath)
	}
	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "Release Notes / 2023-12-01 / body" {
		t.Errorf("output = %q", data)
	}
	if out.Bytes != len(data) {
		t.Errorf("Bytes = %d, want %d", out.Bytes, len(data))
	}
}

func TestHandleGeneratePost_MissingContentFile(t *testing.T) {
	site := makeTestSite(t, "{{blog_content}}", "")
	handler := handleGeneratePost(site.gen)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, GeneratePostInput{
		Title:       "x",
		ContentPath: filepath.Join(site.dir, "missing.txt"),
	})
	if !errors.Is(err, post.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
	if _, statErr := os.Stat(site.outDir); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("output directory should not be created on failure")
	}
}

func TestHandleGeneratePost_NoClobber(t *testing.T) {
	site := makeTestSite(t, "{{blog_content}}", "body")
	handler := handleGeneratePost(site.gen)
	input := GeneratePostInput{Title: "x", ContentPath: site.content}

	if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, input); err != nil {
		t.Fatal(err)
	}
	input.NoClobber = true
	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, input)
	if !errors.Is(err, post.ErrPostExists) {
		t.Fatalf("expected ErrPostExists, got %v", err)
	}
}
