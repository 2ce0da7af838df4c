package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kjannette/bellcurve-backend/internal/api"
	"github.com/kjannette/bellcurve-backend/internal/config"
	"github.com/kjannette/bellcurve-backend/internal/db"
	"github.com/kjannette/bellcurve-backend/internal/external"
	"github.com/kjannette/bellcurve-backend/internal/logger"
	"github.com/kjannette/bellcurve-backend/internal/metrics"
	"github.com/kjannette/bellcurve-backend/internal/repository"
)

const banner = `
╔══════════════════════════════════════╗
║        Bell Curve Price API          ║
║                                      ║
╚══════════════════════════════════════╝
`

func main() {
	fmt.Print(banner)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	cfg.Print()

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	m := metrics.New()

	client := external.NewAlphaVantageClient(cfg.AlphaVantageAPIKey,
		external.WithBaseURL(cfg.AlphaVantageBaseURL),
		external.WithHTTPClient(&http.Client{Timeout: cfg.UpstreamTimeout()}),
		external.WithObserver(m),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := api.Options{
		Port:       cfg.Port,
		CORSOrigin: cfg.CORSAllowOrigin,
		Fetcher:    client,
		Metrics:    m,
		Logger:     log,
	}

	// Archive
	if cfg.ArchiveEnabled {
		log.Info("connecting to archive database",
			zap.String("host", cfg.DBHost),
			zap.Int("port", cfg.DBPort),
			zap.String("name", cfg.DBName),
		)
		pool, err := db.Connect(ctx, cfg.DSN())
		if err != nil {
			log.Fatal("archive database connection failed", zap.Error(err))
		}
		defer func() {
			pool.Close()
			log.Info("archive connection pool closed")
		}()

		if err := db.EnsureSchema(ctx, pool); err != nil {
			log.Fatal("archive schema setup failed", zap.Error(err))
		}

		opts.Archive = repository.NewBarRepo(pool)
		opts.DB = pool
	}

	srv := api.NewServer(opts)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("API server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("API shutdown error", zap.Error(err))
	}
	log.Info("shutdown complete")
}
