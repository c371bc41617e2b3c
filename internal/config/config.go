// Package config loads maskedit configuration from a TOML file with
// environment variable overrides. A missing file is not an error;
// defaults apply and the environment is still consulted.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/maskedit/internal/registry"
)

// Config is the root configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Input   InputConfig   `toml:"input"`
	Plugins PluginsConfig `toml:"plugins"`
	Masks   []MaskConfig  `toml:"masks"`
}

// LoggingConfig controls the application logger.
type LoggingConfig struct {
	// Level is the minimum level to log ("debug", "info", "warn", "error").
	Level string `toml:"level"`

	// Path is a log file path; empty logs to stderr.
	Path string `toml:"path"`
}

// InputConfig controls mask presentation defaults.
type InputConfig struct {
	// Prompt is the placeholder glyph for unfilled slots.
	Prompt string `toml:"prompt"`

	// ShowOptional reveals unfilled optional slots on unfocused fields.
	ShowOptional bool `toml:"show_optional"`
}

// PluginsConfig controls the Lua mask plugin loader.
type PluginsConfig struct {
	// Dir is the directory scanned for *.lua mask plugins.
	Dir string `toml:"dir"`
}

// MaskConfig is one user-defined mask definition.
type MaskConfig struct {
	Name        string `toml:"name"`
	Pattern     string `toml:"pattern"`
	Prompt      string `toml:"prompt"`
	Description string `toml:"description"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Input:   InputConfig{Prompt: "_"},
	}
}

// DefaultPath returns the default configuration file path,
// ~/.config/maskedit/config.toml on most systems.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "maskedit", "config.toml")
}

// Load reads configuration from path, falling back to DefaultPath
// when path is empty. A missing file yields the defaults; malformed
// TOML is the only load error. Environment overrides are applied in
// both cases.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// PromptRune returns the configured prompt as a rune, or the default
// underscore when unset.
func (c Config) PromptRune() rune {
	for _, r := range c.Input.Prompt {
		return r
	}
	return '_'
}

// Definitions converts the configured mask table into registry
// definitions, dropping entries without a name or pattern.
func (c Config) Definitions() []registry.Definition {
	defs := make([]registry.Definition, 0, len(c.Masks))
	for _, mc := range c.Masks {
		if mc.Name == "" || mc.Pattern == "" {
			continue
		}
		def := registry.Definition{
			Name:        mc.Name,
			Pattern:     mc.Pattern,
			Description: mc.Description,
		}
		for _, r := range mc.Prompt {
			def.Prompt = r
			break
		}
		defs = append(defs, def)
	}
	return defs
}
