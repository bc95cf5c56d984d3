// chess-server serves chess matches over a JSON REST API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/match"
	"github.com/lgbarn/chessrules-go/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "chess-server: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM, then shuts down gracefully.
func run(cfg *config.Config) error {
	log := cfg.Logger()
	registry := match.NewRegistry(cfg.Registry.MaxMatches)
	srv := server.New(cfg, registry, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Listen(cfg.Server.Addr)
	}()

	select {
	case err := <-errc:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
		return err
	}
	log.Info().Int("matches", registry.Len()).Msg("stopped")
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "Serves chess matches over a JSON REST API.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRoutes:\n")
	fmt.Fprintf(os.Stderr, "  GET    /healthz\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games                 new match (optional fen, or board and turn)\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games                 list matches\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id             match state\n")
	fmt.Fprintf(os.Stderr, "  DELETE /api/games/:id             end a match\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id/moves       legal moves (?square=e2)\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/moves       play {\"from\",\"to\",\"promotion\"}\n")
	fmt.Fprintf(os.Stderr, "  PUT    /api/games/:id/board       replace the board\n")
}
