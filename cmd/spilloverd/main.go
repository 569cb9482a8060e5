package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tailored-agentic-units/spillover/cache"
	"github.com/tailored-agentic-units/spillover/observability"
	"github.com/tailored-agentic-units/spillover/server"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to server config JSON file")
		addr       = flag.String("addr", "", "Listen address (overrides config)")
		capacity   = flag.Int("capacity", 0, "Hot-tier capacity; 0 keeps the config value (overrides config)")
		scratchDir = flag.String("scratch", "", "Parent directory for spill files (overrides config)")
		verbose    = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	cfg := server.DefaultConfig()
	if *configFile != "" {
		loaded, err := server.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *capacity > 0 {
		cfg.Capacity = *capacity
	}
	if *scratchDir != "" {
		cfg.ScratchDir = *scratchDir
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	named, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		log.Fatalf("Failed to resolve observer %q: %v", cfg.Observer, err)
	}
	obs := observability.NewMultiObserver(
		named,
		observability.NewPromObserver("spillover", nil),
	)

	c := cache.New(cache.Config[string, []byte]{
		Capacity:   cfg.Capacity,
		ScratchDir: cfg.ScratchDir,
		Codec:      cache.RawCodec{},
		Observer:   obs,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(c, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("server.start", "addr", cfg.Addr, "capacity", cfg.Capacity)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("server.shutdown.signal")
	case err := <-errCh:
		logger.Error("server.error", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server.shutdown.error", "err", err)
	}

	// Release the scratch directory before exit.
	if err := c.Clear(); err != nil {
		logger.Error("cache.clear.error", "err", err)
	}
}
