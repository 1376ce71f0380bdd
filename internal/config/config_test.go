package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2, cfg.Indent)
	assert.Empty(t, cfg.Digest)
	assert.False(t, cfg.Clipboard)
	assert.True(t, cfg.Color)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative indent", func(c *Config) { c.Indent = -1 }, "indent"},
		{"huge indent", func(c *Config) { c.Indent = 99 }, "indent"},
		{"unknown digest", func(c *Config) { c.Digest = "md5" }, "digest"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Accepts(t *testing.T) {
	cfg := Default()
	cfg.Indent = 0
	cfg.Digest = "blake2b-256"
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"
	assert.NoError(t, cfg.Validate())
}
