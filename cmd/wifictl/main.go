package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container
	_ "time/tzdata"                            // Embed zone data for GUESTWIFI_TIMEZONE in scratch container

	"github.com/ericfisherdev/guestwifi/internal/adapter/driven/csvsource"
	"github.com/ericfisherdev/guestwifi/internal/adapter/driving/cli"
	"github.com/ericfisherdev/guestwifi/internal/application"
	"github.com/ericfisherdev/guestwifi/internal/bootstrap"
	"github.com/ericfisherdev/guestwifi/internal/config"
	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := bootstrap.NewLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Resources are opened on first use and closed when the command returns.
	var closers []func() error
	defer func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Error("error closing resource", "error", err)
			}
		}
	}()

	deps := cli.Deps{
		FileSystem: csvsource.OSFileSystem{},
		CSVPath:    cfg.CSVPath,
		Passwords: func(ctx context.Context) (*application.PasswordService, error) {
			src, err := bootstrap.OpenSource(ctx, cfg, logger)
			if err != nil {
				return nil, err
			}
			closers = append(closers, src.Close)
			return bootstrap.NewPasswordService(cfg, src, nil, logger), nil
		},
		Store: func(ctx context.Context) (driven.RecordStore, error) {
			store, closeDB, err := bootstrap.OpenStore(ctx, cfg.DBPath, logger)
			if err != nil {
				return nil, err
			}
			closers = append(closers, closeDB)
			return store, nil
		},
	}

	return cli.NewRootCmd(version, deps).ExecuteContext(ctx)
}
