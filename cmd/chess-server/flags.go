// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Server options
	addr            = flag.String("addr", ":8080", "Listen address")
	allowOrigins    = flag.String("allow-origins", "*", "CORS allowed origins, comma separated")
	bodyLimit       = flag.Int("body-limit", 64*1024, "Maximum request body size in bytes")
	readTimeout     = flag.Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	writeTimeout    = flag.Duration("write-timeout", 10*time.Second, "HTTP write timeout")
	shutdownTimeout = flag.Duration("shutdown-timeout", 5*time.Second, "Grace period for requests in flight on shutdown")

	// Logging options
	logLevel  = flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	prettyLog = flag.Bool("pretty-log", false, "Human-readable console logs instead of JSON")
	noColor   = flag.Bool("no-color", false, "Disable colours in -pretty-log output")

	// Registry options
	maxMatches = flag.Int("max-matches", 1000, "Maximum concurrent matches (0 = unlimited)")

	// Other
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into the configuration.
func applyFlags(cfg *config.Config) {
	applyServerFlags(cfg)
	applyLogFlags(cfg)
	cfg.Registry.MaxMatches = *maxMatches
}

// applyServerFlags configures the HTTP listener.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.AllowOrigins = *allowOrigins
	cfg.Server.BodyLimit = *bodyLimit
	cfg.Server.ReadTimeout = *readTimeout
	cfg.Server.WriteTimeout = *writeTimeout
	cfg.Server.ShutdownTimeout = *shutdownTimeout
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config) {
	cfg.Log.Level = *logLevel
	cfg.Log.Pretty = *prettyLog
	cfg.Log.NoColor = *noColor
}
