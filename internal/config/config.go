// Package config provides configuration for the chess server.
package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Server   *ServerConfig
	Log      *LogConfig
	Registry *RegistryConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server:   NewServerConfig(),
		Log:      NewLogConfig(),
		Registry: NewRegistryConfig(),
	}
}

// Validate checks every section, returning the first problem found.
func (c *Config) Validate() error {
	if c.Server == nil || c.Log == nil || c.Registry == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing section")
	}
	if c.Server.Addr == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "server address is empty")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "timeouts must be positive")
	}
	if c.Server.BodyLimit <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "body limit %d", c.Server.BodyLimit)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.Log.Level)
	}
	if c.Registry.MaxMatches < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max matches %d", c.Registry.MaxMatches)
	}
	return nil
}

// Logger builds the zerolog logger the config describes. Call Validate first;
// an unknown level falls back to info.
func (c *Config) Logger() zerolog.Logger {
	var w io.Writer = c.Log.Output
	if w == nil {
		w = os.Stderr
	}
	if c.Log.Pretty {
		w = zerolog.ConsoleWriter{Out: w, NoColor: c.Log.NoColor}
	}

	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
