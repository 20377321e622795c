// Package config resolves postgen settings: the template path, the output
// directory and the placeholder tokens.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the postgen configuration directory.
//
// Resolution:
//   - $POSTGEN_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/postgen if set
//   - %AppData%/postgen on Windows
//   - ~/.config/postgen elsewhere
//
// Returns "" when no home directory can be determined.
func Dir() string {
	if dir := os.Getenv("POSTGEN_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "postgen")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "postgen")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "postgen")
}

// GlobalFile returns the path of the user-wide config file, or "" when
// Dir cannot be resolved.
func GlobalFile() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
