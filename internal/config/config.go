// Package config holds the settings of the monkey shell. Settings come from
// built-in defaults, optionally overridden by a YAML file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPrompt      = ">> "
	DefaultHistoryFile = ".monkey_history"
	DefaultConfigFile  = ".monkey.yaml"
)

// Config is the shell configuration. Keys present in a YAML file replace the
// defaults, except that an empty prompt keeps the default prompt. An empty
// history_file turns history off.
type Config struct {
	// Prompt is printed before each REPL line.
	Prompt string `yaml:"prompt"`
	// HistoryFile is where the REPL keeps its line history. An empty value
	// disables history.
	HistoryFile string `yaml:"history_file"`
	// Color enables coloured error output.
	Color bool `yaml:"color"`
	// Verbose enables evaluation tracing.
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration. The history file lives in the
// user's home directory when it can be found.
func Default() Config {
	history := DefaultHistoryFile
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, DefaultHistoryFile)
	}
	return Config{
		Prompt:      DefaultPrompt,
		HistoryFile: history,
		Color:       true,
	}
}

// DefaultPath returns the configuration file looked up when none is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFile
	}
	return filepath.Join(home, DefaultConfigFile)
}

// Load reads the configuration at path over the defaults. If path is empty
// the default path is tried and a missing file there is not an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}

	cfg, err := Parse(data, Default())
	if err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML data over base. Keys missing from data keep their value
// from base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.WithStack(err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = base.Prompt
	}
	return cfg, nil
}
