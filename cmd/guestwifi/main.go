package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container
	_ "time/tzdata"                            // Embed zone data for GUESTWIFI_TIMEZONE in scratch container

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	promadapter "github.com/ericfisherdev/guestwifi/internal/adapter/driven/prometheus"
	httphandler "github.com/ericfisherdev/guestwifi/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/guestwifi/internal/adapter/driving/web"
	"github.com/ericfisherdev/guestwifi/internal/bootstrap"
	"github.com/ericfisherdev/guestwifi/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := bootstrap.NewLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"source", cfg.Source,
		"network", cfg.NetworkName,
		"timezone", cfg.Location.String(),
		"show_yesterday", cfg.ShowYesterday,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the password table source.
	src, err := bootstrap.OpenSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			slog.Error("error closing source", "error", closeErr)
		}
	}()

	// 4. Metrics registry with process and Go runtime collectors.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := promadapter.NewRecorder(reg)

	// 5. Password service behind the record cache.
	passwordSvc := bootstrap.NewPasswordService(cfg, src, metrics, logger)

	// Surface a missing or broken table at startup; the server still starts
	// and the page shows the error state until the table is fixed.
	if result := passwordSvc.CurrentPassword(ctx); result.HasError() {
		slog.Warn("password not available at startup", "state", result.ErrorState, "date", result.Date)
	}

	// 6. Register API and GUI routes.
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(passwordSvc, reg, logger))
	webhandler.RegisterRoutes(mux, webhandler.NewHandler(passwordSvc, cfg.Notice, logger))

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			stop()
		}
	}()

	slog.Info("guestwifi started", "listen_addr", cfg.ListenAddr)

	// 7. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 8. Graceful shutdown with 10s timeout for in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
