// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML configuration file. Zero values mean "unset";
// command-line flags take precedence over config values.
type Config struct {
	Root             string   `yaml:"root"`
	Rules            []string `yaml:"rules"`
	Ignore           []string `yaml:"ignore"`
	IgnoreFile       string   `yaml:"ignore_file"`
	RespectGitignore bool     `yaml:"respect_gitignore"`
	Output           string   `yaml:"output"`
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/globscope/config.yml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "globscope", "config.yml")
}

// DefaultIgnoreFile returns the default ignore-rule file location,
// $XDG_CONFIG_HOME/globscope/ignore.
func DefaultIgnoreFile() string {
	return filepath.Join(xdg.ConfigHome, "globscope", "ignore")
}

// Load reads the config file at path. A missing file is not an error and
// yields the zero Config.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
