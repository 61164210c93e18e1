package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rlch/movies/server"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the movie graph over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "listening port",
				Sources: cli.EnvVars("PORT"),
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Starting movies server",
		zap.Int("port", cfg.Port),
		zap.String("dialect", cfg.Dialect),
		zap.String("uri", cfg.Connection.URI))

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	defer func() {
		err := store.Close()
		if err != nil {
			logger.Warn("Failed to close store", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(store, logger, server.DefaultConfig(cfg.Port)).Run(ctx)
}
