package mcp

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/postgen/internal/generate"
)

// --- derive_filename ---

// DeriveFilenameInput is the input for the derive_filename tool.
type DeriveFilenameInput struct {
	Title string `json:"title" jsonschema:"post title"`
}

// DeriveFilenameOutput is the output for the derive_filename tool.
type DeriveFilenameOutput struct {
	Filename string `json:"filename" jsonschema:"file name, YYYY-MM-DD-slug.html"`
	Path     string `json:"path"     jsonschema:"full output path"`
}

func handleDeriveFilename(gen *generate.Generator) mcp.ToolHandlerFor[DeriveFilenameInput, DeriveFilenameOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DeriveFilenameInput) (*mcp.CallToolResult, DeriveFilenameOutput, error) {
		path := gen.OutputPath(input.Title)
		return nil, DeriveFilenameOutput{Filename: filepath.Base(path), Path: path}, nil
	}
}

// --- render_post ---

// RenderPostInput is the input for the render_post tool.
type RenderPostInput struct {
	Title       string `json:"title"          jsonschema:"post title"`
	Date        string `json:"date,omitempty" jsonschema:"post date YYYY-MM-DD, defaults to today"`
	ContentPath string `json:"content_path"   jsonschema:"path to the plain-text post content"`
}

// RenderPostOutput is the output for the render_post tool.
type RenderPostOutput struct {
	Path  string `json:"path"  jsonschema:"where generate_post would write the post"`
	Date  string `json:"date"  jsonschema:"date substituted into the template"`
	Bytes int    `json:"bytes" jsonschema:"size of the rendered HTML"`
	HTML  string `json:"html"  jsonschema:"rendered HTML"`
}

func handleRenderPost(gen *generate.Generator) mcp.ToolHandlerFor[RenderPostInput, RenderPostOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderPostInput) (*mcp.CallToolResult, RenderPostOutput, error) {
		if err := validateRequest(input.Title, input.ContentPath); err != nil {
			return nil, RenderPostOutput{}, err
		}

		result, err := gen.Render(generate.Request{
			Title:       input.Title,
			Date:        input.Date,
			ContentPath: input.ContentPath,
		})
		if err != nil {
			return nil, RenderPostOutput{}, err
		}

		return nil, RenderPostOutput{
			Path:  result.Path,
			Date:  result.Date,
			Bytes: result.Bytes,
			HTML:  result.HTML,
		}, nil
	}
}

// --- generate_post ---

// GeneratePostInput is the input for the generate_post tool.
type GeneratePostInput struct {
	Title       string `json:"title"                jsonschema:"post title"`
	Date        string `json:"date,omitempty"       jsonschema:"post date YYYY-MM-DD, defaults to today"`
	ContentPath string `json:"content_path"         jsonschema:"path to the plain-text post content"`
	NoClobber   bool   `json:"no_clobber,omitempty" jsonschema:"fail instead of overwriting an existing post"`
}

// GeneratePostOutput is the output for the generate_post tool.
type GeneratePostOutput struct {
	Path  string `json:"path"  jsonschema:"path of the written post"`
	Date  string `json:"date"  jsonschema:"date substituted into the template"`
	Bytes int    `json:"bytes" jsonschema:"bytes written"`
}

func handleGeneratePost(gen *generate.Generator) mcp.ToolHandlerFor[GeneratePostInput, GeneratePostOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GeneratePostInput) (*mcp.CallToolResult, GeneratePostOutput, error) {
		if err := validateRequest(input.Title, input.ContentPath); err != nil {
			return nil, GeneratePostOutput{}, err
		}

		result, err := gen.Generate(generate.Request{
			Title:       input.Title,
			Date:        input.Date,
			ContentPath: input.ContentPath,
			NoClobber:   input.NoClobber,
		})
		if err != nil {
			return nil, GeneratePostOutput{}, err
		}

		return nil, GeneratePostOutput{Path: result.Path, Date: result.Date, Bytes: result.Bytes}, nil
	}
}

// validateRequest checks the request before any file is touched. The title
// is not validated: an empty title is allowed and slugs to nothing.
func validateRequest(_, contentPath string) error {
	if contentPath == "" {
		return errors.New("content_path is required")
	}
	return nil
}
