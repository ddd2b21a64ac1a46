package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prefstore/prefstore/api"
	"github.com/prefstore/prefstore/backend"
	"github.com/prefstore/prefstore/config"
	"github.com/prefstore/prefstore/engine"
	"github.com/prefstore/prefstore/observability"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to config JSON file")
		dataPath   = flag.String("data", "", "Path to file-backend data directory (overrides config)")
		addr       = flag.String("addr", "", "HTTP listen address (overrides config)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	if *dataPath != "" {
		cfg.Backend.Driver = backend.DriverFile
		cfg.Backend.Path = *dataPath
	}
	if *addr != "" {
		cfg.API.Addr = *addr
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))
	observer, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		log.Fatalf("Failed to resolve observer: %v", err)
	}
	if *verbose && cfg.Observer != "slog" {
		// Verbose keeps the configured observer and adds engine events to
		// the log alongside it.
		observer = observability.NewMultiObserver(observer, observability.NewSlogObserver(logger))
	}

	b, err := backend.New(&cfg.Backend)
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}

	eng := engine.New(b,
		engine.WithObserver(observer),
		engine.WithClearWidth(cfg.Engine.ClearWidth),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("prefstore listening", "addr", cfg.API.Addr, "driver", cfg.Backend.Driver)
	if err := api.Start(ctx, cfg.API, eng, logger); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
