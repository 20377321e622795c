package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/postgen/internal/generate"
	"github.com/gorewood/postgen/internal/post"
)

func newSlugCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "slug <title...>",
		Short: "Show the output path for a title",
		Long: `Show the file a post with this title would be written to today.

Words are joined with single spaces, so quoting is optional.

Examples:
  postgen slug "Hello, World!"     # generated/2024-01-15-hello-world.html
  postgen slug My First Post --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			cfg, err := resolveConfig(cmd)
			if err != nil {
				printer.Error(err)
				return err
			}

			title := strings.Join(args, " ")
			path := generate.New(cfg, generate.WithClock(d.now)).OutputPath(title)

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					"title":    title,
					"slug":     post.Slug(title),
					"filename": filepath.Base(path),
					"path":     path,
				})
			}
			printer.Println(path)
			return nil
		},
	}
}
