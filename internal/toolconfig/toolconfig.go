// Package toolconfig loads cmd/dynmsgtool's optional TOML configuration
// file, merging declared values over defaults the way edgectl's ghostctl
// loads its service config.
package toolconfig

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds cmd/dynmsgtool's runtime settings.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
	// OutputFormat is either "text" or "json".
	OutputFormat string
	// Color holds the config file's color setting, or nil when the file
	// doesn't declare one. cmd/dynmsgtool does not read it: console color
	// follows terminal detection only.
	Color *bool
}

// Default returns the tool's built-in defaults.
func Default() Config {
	return Config{
		LogLevel:     "info",
		OutputFormat: "text",
	}
}

type fileConfig struct {
	LogLevel     string `toml:"log_level"`
	OutputFormat string `toml:"output_format"`
	Color        bool   `toml:"color"`
}

// Load reads path and merges any declared keys over Default(). A missing
// or unreadable file is returned as an error wrapping the underlying
// cause, so callers can check errors.Is(err, fs.ErrNotExist) and decide
// whether a config file is required.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("toolconfig: load %s: %w", path, err)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("output_format") {
		cfg.OutputFormat = strings.ToLower(strings.TrimSpace(raw.OutputFormat))
	}
	if meta.IsDefined("color") {
		c := raw.Color
		cfg.Color = &c
	}

	return cfg, nil
}
