package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultUploadDir, cfg.UploadDir)
	assert.True(t, cfg.Latency.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())

	min, max := cfg.Latency.Bounds()
	assert.Equal(t, 200*time.Millisecond, min)
	assert.Equal(t, 1200*time.Millisecond, max)
}

func TestLatencyBoundsFallBack(t *testing.T) {
	l := LatencyConfig{Min: "garbage", Max: ""}
	min, max := l.Bounds()
	assert.Equal(t, 200*time.Millisecond, min)
	assert.Equal(t, 1200*time.Millisecond, max)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(c *Config) {}},
		{name: "port too low", mutate: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "port too high", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "empty upload dir", mutate: func(c *Config) { c.UploadDir = "" }, wantErr: true},
		{name: "negative seed users", mutate: func(c *Config) { c.SeedUsers = -1 }, wantErr: true},
		{name: "inverted latency bounds", mutate: func(c *Config) {
			c.Latency.Min = "2s"
			c.Latency.Max = "1s"
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devstub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 4000\nlatency:\n  enabled: false\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.False(t, cfg.Latency.Enabled)
	// Unnamed fields keep their defaults.
	assert.Equal(t, DefaultUploadDir, cfg.UploadDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: [not a number"), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: -1\n"), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
