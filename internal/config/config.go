// Package config provides configuration loading for the unravel CLI.
package config

import (
	"fmt"

	"github.com/zoobzio/unravel"
)

// Config holds CLI settings.
type Config struct {
	// Indent is the number of spaces the beautify transform indents by.
	Indent int `koanf:"indent"`

	// Digest names a fingerprint algorithm appended to every result; empty disables it.
	Digest string `koanf:"digest"`

	// Clipboard reads input from and writes results to the system clipboard.
	Clipboard bool `koanf:"clipboard"`

	// Color styles banners when stdout is a terminal.
	Color bool `koanf:"color"`

	Log LogConfig `koanf:"log"`
}

// LogConfig controls the CLI's diagnostic logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

const maxIndent = 16

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Indent: unravel.DefaultIndent,
		Color:  true,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > maxIndent {
		return fmt.Errorf("indent must be between 0 and %d, got %d", maxIndent, c.Indent)
	}
	if c.Digest != "" && !unravel.IsValidDigestAlgo(unravel.DigestAlgo(c.Digest)) {
		return fmt.Errorf("unknown digest algorithm %q", c.Digest)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Log.Format)
	}
	return nil
}
