package config

import (
	"os"
	"strconv"
)

// Environment variables recognized as overrides. Values set here win
// over the configuration file.
const (
	EnvLogLevel     = "MASKEDIT_LOG_LEVEL"
	EnvLogPath      = "MASKEDIT_LOG_PATH"
	EnvPrompt       = "MASKEDIT_PROMPT"
	EnvShowOptional = "MASKEDIT_SHOW_OPTIONAL"
	EnvPluginDir    = "MASKEDIT_PLUGIN_DIR"
)

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogPath); ok {
		cfg.Logging.Path = v
	}
	if v, ok := os.LookupEnv(EnvPrompt); ok && v != "" {
		cfg.Input.Prompt = v
	}
	if v, ok := os.LookupEnv(EnvShowOptional); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Input.ShowOptional = b
		}
	}
	if v, ok := os.LookupEnv(EnvPluginDir); ok {
		cfg.Plugins.Dir = v
	}
}
