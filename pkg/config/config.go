// Package config holds the server configuration and its YAML file loader.
package config

import (
	"fmt"
	"time"
)

// Defaults.
const (
	DefaultPort         = 3000
	DefaultUploadDir    = "uploads"
	DefaultReadTimeout  = 30 // seconds
	DefaultWriteTimeout = 30 // seconds
	DefaultLatencyMin   = "200ms"
	DefaultLatencyMax   = "1200ms"
)

// LatencyConfig controls the simulated network latency applied to resource
// and auth endpoints. Min and Max are duration strings ("200ms", "1s").
type LatencyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Min     string `yaml:"min"`
	Max     string `yaml:"max"`
}

// Bounds parses the configured bounds, falling back to the defaults for
// empty or malformed values.
func (l LatencyConfig) Bounds() (time.Duration, time.Duration) {
	min, err := time.ParseDuration(l.Min)
	if err != nil {
		min, _ = time.ParseDuration(DefaultLatencyMin)
	}
	max, err := time.ParseDuration(l.Max)
	if err != nil {
		max, _ = time.ParseDuration(DefaultLatencyMax)
	}
	return min, max
}

// Config is the full server configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `yaml:"port"`

	// UploadDir is where the upload gateway stores files.
	UploadDir string `yaml:"uploadDir"`

	// Latency configures the simulated request latency.
	Latency LatencyConfig `yaml:"latency"`

	// DevMode exposes internal error detail in 500 responses.
	DevMode bool `yaml:"devMode"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `yaml:"logLevel"`

	// LogFormat is text or json.
	LogFormat string `yaml:"logFormat"`

	// SeedUsers adds this many generated users (with posts) on top of the
	// built-in seed data.
	SeedUsers int `yaml:"seedUsers"`

	// ReadTimeout and WriteTimeout are HTTP server timeouts in seconds.
	ReadTimeout  int `yaml:"readTimeout"`
	WriteTimeout int `yaml:"writeTimeout"`
}

// Default returns the configuration the server starts with when no file
// or flags are given.
func Default() *Config {
	return &Config{
		Port:      DefaultPort,
		UploadDir: DefaultUploadDir,
		Latency: LatencyConfig{
			Enabled: true,
			Min:     DefaultLatencyMin,
			Max:     DefaultLatencyMax,
		},
		LogLevel:     "info",
		LogFormat:    "text",
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.UploadDir == "" {
		return fmt.Errorf("uploadDir cannot be empty")
	}
	if c.SeedUsers < 0 {
		return fmt.Errorf("seedUsers cannot be negative")
	}
	min, max := c.Latency.Bounds()
	if min < 0 || max < min {
		return fmt.Errorf("latency bounds %v..%v invalid", min, max)
	}
	return nil
}
