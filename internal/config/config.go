// Package config loads the optional YAML configuration file. Defaults
// are modeled as an explicit value handed to commands rather than
// ambient process state, so the transforms stay pure functions of
// their inputs.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is searched when no --config flag is given; a missing
// file at this path is not an error.
const DefaultPath = "contribstats.yaml"

// Config carries the run defaults. Flags always override it.
type Config struct {
	// DataDir is the cache directory the fetch collaborators write to.
	DataDir string `yaml:"data_dir"`

	// Since is the lower-bound date (YYYY-MM-DD) the datasets were
	// fetched with; reported in summaries only.
	Since string `yaml:"since"`

	// Author is the default identity (code-hosting login).
	Author string `yaml:"author"`

	// Schema optionally overrides the ticket projection columns.
	Schema []string `yaml:"schema"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir: "data",
		Since:   "2025-05-28",
	}
}

// Load reads the config file at path, falling back to Default for any
// field left unset. When path is DefaultPath and the file does not
// exist, Default is returned; an explicitly named file must exist.
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = Default().DataDir
	}
	return cfg, nil
}
