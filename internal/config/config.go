package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/postgen/internal/output"
	"github.com/gorewood/postgen/internal/post"
)

// Defaults.
const (
	DefaultTemplatePath = "template.html"
	DefaultOutputDir    = "generated"
	ProjectFile         = "postgen.yaml"
)

// Environment variables that override file settings.
const (
	EnvTemplate  = "POSTGEN_TEMPLATE"
	EnvOutputDir = "POSTGEN_OUTPUT_DIR"
)

// Where a setting came from.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceProject = "project"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Setting keys, as used in Config.Origins.
const (
	KeyTemplate     = "template"
	KeyOutputDir    = "output_dir"
	KeyTitleToken   = "tokens.title"
	KeyDateToken    = "tokens.date"
	KeyContentToken = "tokens.content"
)

// Config is the resolved configuration for one generation run.
type Config struct {
	TemplatePath string      `yaml:"template"   json:"template"`
	OutputDir    string      `yaml:"output_dir" json:"output_dir"`
	Tokens       post.Tokens `yaml:"tokens"     json:"tokens"`

	// Origins maps each setting key to the source that last set it.
	Origins map[string]string `yaml:"-" json:"origins,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TemplatePath: DefaultTemplatePath,
		OutputDir:    DefaultOutputDir,
		Tokens:       post.DefaultTokens(),
		Origins: map[string]string{
			KeyTemplate:     SourceDefault,
			KeyOutputDir:    SourceDefault,
			KeyTitleToken:   SourceDefault,
			KeyDateToken:    SourceDefault,
			KeyContentToken: SourceDefault,
		},
	}
}

// Options tell Load where to look.
type Options struct {
	// GlobalFile is the user-wide config file. Missing is fine.
	GlobalFile string

	// ProjectFile is the per-project config file. Missing is fine unless
	// Explicit is set.
	ProjectFile string

	// Explicit marks ProjectFile as passed by the user (--config), so a
	// missing file is an error.
	Explicit bool

	// Getenv looks up environment overrides. Nil means os.Getenv.
	Getenv func(string) string
}

// Load resolves configuration from defaults, the global file, the project
// file and the environment, in that order. Later sources win.
func Load(opts Options) (Config, error) {
	cfg := Default()

	if err := cfg.mergeFile(opts.GlobalFile, SourceGlobal, false); err != nil {
		return Config{}, err
	}
	if err := cfg.mergeFile(opts.ProjectFile, SourceProject, opts.Explicit); err != nil {
		return Config{}, err
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg.Set(KeyTemplate, getenv(EnvTemplate), SourceEnv)
	cfg.Set(KeyOutputDir, getenv(EnvOutputDir), SourceEnv)

	return cfg, nil
}

// Set overrides one setting. Empty values are ignored so unset flags and
// variables never clear a value.
func (c *Config) Set(key, value, source string) {
	if value == "" {
		return
	}
	switch key {
	case KeyTemplate:
		c.TemplatePath = value
	case KeyOutputDir:
		c.OutputDir = value
	case KeyTitleToken:
		c.Tokens.Title = value
	case KeyDateToken:
		c.Tokens.Date = value
	case KeyContentToken:
		c.Tokens.Content = value
	default:
		return
	}
	if c.Origins == nil {
		c.Origins = make(map[string]string)
	}
	c.Origins[key] = source
}

// mergeFile applies the non-empty settings found in a YAML file.
func (c *Config) mergeFile(path, source string, required bool) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if required {
				return output.NewUserErrorWithCause(fmt.Sprintf("config file '%s' not found", path), err)
			}
			return nil
		}
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return output.NewUserErrorWithCause(fmt.Sprintf("invalid config file '%s': %v", path, err), err)
	}

	c.Set(KeyTemplate, file.TemplatePath, source)
	c.Set(KeyOutputDir, file.OutputDir, source)
	c.Set(KeyTitleToken, file.Tokens.Title, source)
	c.Set(KeyDateToken, file.Tokens.Date, source)
	c.Set(KeyContentToken, file.Tokens.Content, source)
	return nil
}

// Validate rejects tokens that would make rendering ambiguous.
func (c Config) Validate() error {
	tokens := []struct{ key, value string }{
		{KeyTitleToken, c.Tokens.Title},
		{KeyDateToken, c.Tokens.Date},
		{KeyContentToken, c.Tokens.Content},
	}
	seen := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		if tok.value == "" {
			return output.NewUserError(tok.key + " must not be empty")
		}
		if other, dup := seen[tok.value]; dup {
			return output.NewUserError(fmt.Sprintf("%s and %s are both %q", other, tok.key, tok.value))
		}
		seen[tok.value] = tok.key
	}
	return nil
}
