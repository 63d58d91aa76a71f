package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cybanjar/intl-formatter/config"
	"github.com/cybanjar/intl-formatter/httputil"
	"github.com/cybanjar/intl-formatter/internal/api"
	"github.com/cybanjar/intl-formatter/locale"
	"github.com/cybanjar/intl-formatter/logging"
	"github.com/cybanjar/intl-formatter/metrics"
	"github.com/cybanjar/intl-formatter/numfmt"
)

const shutdownTimeout = 10 * time.Second

func main() {
	bootstrap := logging.Bootstrap()
	bootstrap.Info("bootstrap logger initialized", zap.String("app", "numfmtd"))

	cfg, err := config.Load(bootstrap)
	if err != nil {
		bootstrap.Error("config load failed", zap.Error(err))
		os.Exit(1)
	}
	bootstrap.Info("config loaded",
		zap.String("env", cfg.Env),
		zap.String("log_level", cfg.LogLevel),
		zap.String("default_locale", cfg.Defaults.Locale),
	)

	logger := logging.Must(cfg.LogLevel, cfg.Env)
	defer logger.Sync()
	httputil.SetLogger(logger)

	metrics.RegisterDefault(logger)
	numfmt.SetDefaultObserver(metrics.Recorder{})

	if cfg.OverridesDir != "" {
		if err := locale.LoadOverridesDir(cfg.OverridesDir); err != nil {
			logger.Error("locale overrides load failed",
				zap.String("dir", cfg.OverridesDir), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("locale overrides loaded", zap.String("dir", cfg.OverridesDir))
	}

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: api.Handler(cfg, logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("numfmtd listening", zap.String("addr", cfg.Listen))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
