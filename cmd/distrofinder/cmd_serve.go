package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/HerbHall/distrofinder/internal/catalog"
	"github.com/HerbHall/distrofinder/internal/config"
	"github.com/HerbHall/distrofinder/internal/server"
	"github.com/HerbHall/distrofinder/internal/version"
)

const shutdownTimeout = 10 * time.Second

func runServe(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(settings.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("DistroFinder server starting", version.Fields()...)

	cat, locales, err := loadSources(settings.Catalog.Path, settings.Locale.Path)
	if err != nil {
		logger.Error("failed to load catalog", zap.Error(err))
		return err
	}
	logger.Info("catalog loaded",
		zap.Int("distros", cat.Len()),
		zap.Int("catalog_version", cat.Vocabulary().Version()),
		zap.String("default_distro", cat.Default().ID),
		zap.Strings("locales", locales.Supported()),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	engine := catalog.NewEngine(cat, catalog.NewMetrics(reg))
	handler := catalog.NewHandler(engine, locales, logger.Named("catalog"))

	srv := server.New(server.Options{
		Addr:         settings.Server.Addr(),
		ReadTimeout:  settings.Server.ReadTimeout,
		WriteTimeout: settings.Server.WriteTimeout,
		RateLimit:    settings.Server.RateLimit,
		RateBurst:    settings.Server.RateBurst,
		Gatherer:     reg,
	}, logger.Named("server"), handler)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
		}
		return err
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
		return err
	}

	logger.Info("DistroFinder server stopped")
	return nil
}

// newLogger builds a JSON production logger, or the console development
// logger at debug level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if lvl.Level() == zap.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = lvl
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
