package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jbweber/homelab/campus/internal/api"
	"github.com/jbweber/homelab/campus/internal/config"
	"github.com/jbweber/homelab/campus/internal/repository"
	"github.com/jbweber/homelab/campus/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := cfg.NewLogger(os.Stdout)
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repos, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	a := api.NewAPI(repos, logger)
	srv := server.New(api.NewRouter(a, cfg.JWTSecret), server.Options{
		Addr:            cfg.Addr(),
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)
	srv.OnShutdown("store", closeStore)

	logger.Info("campus starting",
		slog.String("env", cfg.AppEnv),
		slog.String("store", cfg.StoreDriver),
		slog.String("addr", cfg.Addr()),
	)
	return srv.Run(ctx)
}

// openStore builds the repositories selected by STORE_DRIVER
func openStore(cfg *config.Config, logger *slog.Logger) (*repository.Repositories, server.ShutdownFunc, error) {
	if cfg.StoreDriver == config.StoreMemory {
		logger.Warn("using in-memory store, data will not survive a restart")
		return repository.NewMemoryRepositories(), func(context.Context) error { return nil }, nil
	}

	db, err := cfg.InitializeDatabase()
	if err != nil {
		return nil, nil, err
	}
	repos := repository.NewSQLRepositories(db)

	closeStore := func(context.Context) error {
		return errors.Join(repos.Close(), db.Close())
	}
	return repos, closeStore, nil
}
