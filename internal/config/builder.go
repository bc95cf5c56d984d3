package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithAddr sets the listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithAllowOrigins sets the CORS allow list.
func (b *ConfigBuilder) WithAllowOrigins(origins string) *ConfigBuilder {
	b.cfg.Server.AllowOrigins = origins
	return b
}

// WithBodyLimit sets the maximum request body size.
func (b *ConfigBuilder) WithBodyLimit(limit int) *ConfigBuilder {
	b.cfg.Server.BodyLimit = limit
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithPrettyLog enables console-formatted logging.
func (b *ConfigBuilder) WithPrettyLog(enabled bool) *ConfigBuilder {
	b.cfg.Log.Pretty = enabled
	return b
}

// WithNoColor disables colours in console-formatted logging.
func (b *ConfigBuilder) WithNoColor(enabled bool) *ConfigBuilder {
	b.cfg.Log.NoColor = enabled
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Log.Output = w
	return b
}

// WithMaxMatches sets the registry capacity.
func (b *ConfigBuilder) WithMaxMatches(n int) *ConfigBuilder {
	b.cfg.Registry.MaxMatches = n
	return b
}
