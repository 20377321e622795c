package main

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/postgen/internal/generate"
	"github.com/gorewood/postgen/internal/output"
	"github.com/gorewood/postgen/internal/store"
)

// Interactive prompts, in the order they are asked.
const (
	titlePrompt   = "Enter the blog title: "
	datePrompt    = "Enter the blog date (YYYY-MM-DD) or leave blank for today: "
	contentPrompt = "Enter the path to the blog content file (e.g., blog_content.txt): "
)

type generateFlags struct {
	title     string
	date      string
	content   string
	noClobber bool
	dryRun    bool
	noInput   bool
}

func newGenerateCmd(d deps) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a post page from the template",
		Long: `Generate a post page from the HTML template and a plain-text content file.

Any of --title and --content that is not given is asked for on stdin, along
with the date. A blank date means today. The output file is always named
after today's date, whatever date the post carries, and replaces an earlier
post with the same title from the same day.

Examples:
  postgen generate                                   # Prompt for everything
  postgen generate --title "My First Post" --content post.txt
  postgen generate --title "Notes" --date 2024-01-01 --content notes.txt --json
  postgen generate --title "Draft" --content draft.txt --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, d, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.title, "title", "t", "", "Post title")
	cmd.Flags().StringVarP(&flags.date, "date", "d", "", "Post date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&flags.content, "content", "c", "", "Path to the plain-text post content")
	cmd.Flags().BoolVar(&flags.noClobber, "no-clobber", false, "Fail instead of overwriting an existing post")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the rendered page instead of writing it")
	cmd.Flags().BoolVar(&flags.noInput, "no-input", false, "Never prompt; fail if --title or --content is missing")

	return cmd
}

func runGenerate(cmd *cobra.Command, d deps, flags generateFlags) error {
	printer := newPrinter(cmd)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	req, err := collectRequest(cmd, printer, cfg.TemplatePath, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	gen := generate.New(cfg, generate.WithClock(d.now))
	if flags.dryRun {
		return printDryRun(printer, gen, req)
	}

	result, err := gen.Generate(req)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"path":    result.Path,
			"title":   result.Title,
			"date":    result.Date,
			"bytes":   result.Bytes,
			"written": result.Written,
		})
	}
	return printer.Success(map[string]any{"message": "Generated blog saved to '" + result.Path + "'"})
}

func printDryRun(printer *output.Printer, gen *generate.Generator, req generate.Request) error {
	result, err := gen.Render(req)
	if err != nil {
		printer.Error(err)
		return err
	}
	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	printer.Preview(result.Path, result.HTML)
	return nil
}

// collectRequest builds the request from flags, prompting for whatever is
// missing. The template is checked before the first prompt so a missing
// template fails without asking anything.
func collectRequest(cmd *cobra.Command, printer *output.Printer, templatePath string, flags generateFlags) (generate.Request, error) {
	req := generate.Request{
		Title:       flags.title,
		Date:        flags.date,
		ContentPath: flags.content,
		NoClobber:   flags.noClobber,
	}

	titleSet := cmd.Flags().Changed("title")
	contentSet := cmd.Flags().Changed("content")
	if titleSet && contentSet {
		return req, nil
	}
	if flags.noInput {
		return req, output.NewUserError("--title and --content are required with --no-input")
	}

	if _, err := store.ReadTemplate(templatePath); err != nil {
		return req, err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	var err error
	if !titleSet {
		if req.Title, err = promptLine(in, printer, titlePrompt); err != nil {
			return req, err
		}
	}
	if !cmd.Flags().Changed("date") {
		if req.Date, err = promptLine(in, printer, datePrompt); err != nil {
			return req, err
		}
	}
	if !contentSet {
		if req.ContentPath, err = promptLine(in, printer, contentPrompt); err != nil {
			return req, err
		}
	}
	return req, nil
}

// promptLine asks question and returns the answer without its line ending.
// Other whitespace is kept. Input that ends before any answer is an error.
func promptLine(in *bufio.Reader, printer *output.Printer, question string) (string, error) {
	printer.Prompt(question)
	line, err := in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", output.NewUserError("input ended before answering: " + strings.TrimSpace(question))
	default:
		return "", output.NewSystemErrorWithCause("failed to read input", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
