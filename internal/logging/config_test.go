package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{Level: "info", File: "api.log", MaxSize: 10, MaxBackups: 3, MaxAge: 7}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown level", func(c *Config) { c.Level = "verbose" }},
		{"empty level", func(c *Config) { c.Level = "" }},
		{"zero max size", func(c *Config) { c.MaxSize = 0 }},
		{"negative backups", func(c *Config) { c.MaxBackups = -1 }},
		{"negative age", func(c *Config) { c.MaxAge = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewLoggerRejectsInvalidConfig(t *testing.T) {
	_, err := NewLogger(&Config{
		Level:   "verbose",
		File:    filepath.Join(t.TempDir(), "api.log"),
		MaxSize: 10,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNewLoggerWritesToFile(t *testing.T) {
	logger, err := NewLogger(&Config{
		Level:   "info",
		File:    filepath.Join(t.TempDir(), "api.log"),
		MaxSize: 1,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("hello %s", "world")
}
