package config

import (
	"io"
	"os"
	"time"
)

// ServerConfig holds settings for the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowOrigins is the CORS allow list, comma separated ("*" for any)
	AllowOrigins string

	// BodyLimit is the maximum request body size in bytes
	BodyLimit int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		AllowOrigins:    "*",
		BodyLimit:       64 * 1024,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// LogConfig holds settings for structured logging.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error...
	Level string

	// Pretty switches from JSON lines to human-readable console output
	Pretty bool

	// NoColor disables colours in pretty output
	NoColor bool

	// Output receives log lines (stderr by default)
	Output io.Writer
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Output: os.Stderr,
	}
}

// RegistryConfig holds settings for the match registry.
type RegistryConfig struct {
	// MaxMatches caps concurrent matches (0 = unlimited)
	MaxMatches int
}

// NewRegistryConfig creates a RegistryConfig with default values.
func NewRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		MaxMatches: 1000,
	}
}
