package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/postgen/internal/config"
	"github.com/gorewood/postgen/internal/output"
)

// lookupFlag finds a local or inherited flag value, walking up to the root
// persistent flags when the command has not merged them yet.
func lookupFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return lookupFlag(cmd, "json") == "true"
}

// newPrinter builds the Printer for a command, honoring --json and --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(lookupFlag(cmd, "color"), output.IsTTY(out))
	return output.NewPrinter(out, isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// resolveConfig loads the config files and environment, then applies the
// --template and --out-dir flags on top.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path := lookupFlag(cmd, "config")
	explicit := path != ""
	if !explicit {
		path = config.ProjectFile
	}

	cfg, err := config.Load(config.Options{
		GlobalFile:  config.GlobalFile(),
		ProjectFile: path,
		Explicit:    explicit,
	})
	if err != nil {
		return config.Config{}, err
	}

	cfg.Set(config.KeyTemplate, lookupFlag(cmd, "template"), config.SourceFlag)
	cfg.Set(config.KeyOutputDir, lookupFlag(cmd, "out-dir"), config.SourceFlag)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
