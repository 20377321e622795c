// Package envfile loads POSTGEN_* style settings from .env files.
// Variables already set in the environment take precedence.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads KEY=VALUE lines. Blank lines, comments and lines without '='
// are skipped. An optional "export " prefix and matching quotes around the
// value are stripped. Later duplicates win.
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if key, value, ok := parseLine(line); ok {
			vars[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning env file: %w", err)
	}
	return vars, nil
}

// Load sets every variable in the file at path that is not already set.
// It reports whether the file existed. A missing file is not an error.
func Load(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	vars, err := Parse(file)
	if err != nil {
		return true, fmt.Errorf("reading env file %s: %w", path, err)
	}
	for key, value := range vars {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return true, fmt.Errorf("setting %s from %s: %w", key, path, err)
		}
	}
	return true, nil
}

// LoadAll loads each path in order and returns the ones that existed.
// Earlier files win because each Load only fills unset variables.
func LoadAll(paths ...string) ([]string, error) {
	var loaded []string
	var errs []error
	for _, path := range paths {
		if path == "" {
			continue
		}
		ok, err := Load(path)
		if err != nil {
			errs = append(errs, err)
		}
		if ok {
			loaded = append(loaded, path)
		}
	}
	return loaded, errors.Join(errs...)
}

func parseLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}
