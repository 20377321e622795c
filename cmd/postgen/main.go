// Package main provides the entry point for the postgen CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/postgen/internal/config"
	"github.com/gorewood/postgen/internal/envfile"
	"github.com/gorewood/postgen/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// deps are the pieces of the environment tests replace.
type deps struct {
	now func() time.Time
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(errorHandler),
	)
	return output.GetExitCode(err)
}

// errorHandler lets fang style errors that commands did not already print
// (flag parsing, unknown commands). ExitErrors were printed by a Printer.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the postgen CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdInternal(deps{now: time.Now})
}

func newRootCmdInternal(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postgen",
		Short: "Generate static blog post pages from an HTML template",
		Long: `Postgen turns a plain-text post into a static HTML page.

It reads an HTML template, replaces {{title}}, {{date}} and {{blog_content}}
with the post's title, date and text, and writes the page to
generated/<YYYY-MM-DD>-<slug>.html.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := newPrinter(cmd)
				err := output.NewUserError("no command specified. Run 'postgen --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// .env.local, then .env, then the global env file. Variables already in
	// the environment always win.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if _, err := envfile.LoadAll(envFiles()...); err != nil {
			if printer := newPrinter(cmd); !printer.IsJSON() {
				printer.Warn("%v", err)
			}
		}
		return nil
	}

	flags := cmd.PersistentFlags()
	flags.Bool("json", false, "Output in JSON format")
	flags.String("color", output.ColorAuto, "Color output: auto, always or never")
	flags.String("config", "", "Config file (default: ./"+config.ProjectFile+" if present)")
	flags.String("template", "", "HTML template path (default: "+config.DefaultTemplatePath+")")
	flags.String("out-dir", "", "Output directory (default: "+config.DefaultOutputDir+")")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd, d)

	return cmd
}

// envFiles lists env files in priority order.
func envFiles() []string {
	files := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		files = append(files, filepath.Join(dir, "env"))
	}
	return files
}

func loadEnvFiles() []string {
	loaded, _ := envfile.LoadAll(envFiles()...)
	return loaded
}

func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

func addCommands(cmd *cobra.Command, d deps) {
	addGroupedCommand(cmd, newGenerateCmd(d), "core")
	addGroupedCommand(cmd, newSlugCmd(d), "core")

	addGroupedCommand(cmd, newServeCmd(d), "agent")

	addGroupedCommand(cmd, newConfigCmd(), "admin")
}

func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
