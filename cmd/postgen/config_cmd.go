package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/postgen/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the settings postgen would use and where each one came from.

Sources, lowest to highest priority:
  default   built-in values
  global    ` + "<config dir>/config.yaml" + `
  project   ./` + config.ProjectFile + ` (or --config)
  env       POSTGEN_TEMPLATE, POSTGEN_OUTPUT_DIR (also read from .env files)
  flag      --template, --out-dir`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			cfg, err := resolveConfig(cmd)
			if err != nil {
				printer.Error(err)
				return err
			}

			// PersistentPreRunE already loaded them; this reports which exist.
			envLoaded := loadEnvFiles()

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					"config":     cfg,
					"config_dir": config.Dir(),
					"env_files":  envLoaded,
				})
			}

			rows := []struct{ key, value string }{
				{config.KeyTemplate, cfg.TemplatePath},
				{config.KeyOutputDir, cfg.OutputDir},
				{config.KeyTitleToken, cfg.Tokens.Title},
				{config.KeyDateToken, cfg.Tokens.Date},
				{config.KeyContentToken, cfg.Tokens.Content},
			}
			for _, row := range rows {
				printer.KeyValue(row.key, row.value+" ("+cfg.Origins[row.key]+")")
			}
			printer.KeyValue("config_dir", config.Dir())
			for _, path := range envLoaded {
				printer.KeyValue("env_file", path)
			}
			return nil
		},
	}
}
