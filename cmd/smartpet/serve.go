package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/realtime"
	"smartpet-backend/internal/routes"
)

var shutdownTimeout time.Duration

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "grace period for in-flight requests")
}

func serve(ctx context.Context) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	logger.Info("starting", zap.Int("jwt_secret_len", len(cfg.JWTSecret)))

	b, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}

	deps := routes.Deps{
		Store:          b.Store,
		Storage:        b.Storage,
		Cache:          cache.New(cfg.CacheSize),
		Hub:            realtime.NewHub(16),
		Log:            logger,
		JWTSecret:      cfg.JWTSecret,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		KeepAlive:      30 * time.Second,
	}
	svc := routes.NewServices(deps)
	app := routes.NewApp(deps, svc)

	listener := realtime.NewListener(
		b.Store.Changes,
		realtime.RefreshHandler(deps.Cache, svc.Feed, deps.Hub, logger.Named("realtime")),
		logger.Named("realtime"),
	)
	sub, subErr := listener.Subscribe(ctx)
	if subErr != nil {
		// the feed still works, it just refreshes on mutation only
		logger.Warn("change feed unavailable", zap.Error(subErr))
	}

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("port", cfg.Port))
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err = <-listenErr:
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if sub != nil {
		err = multierr.Append(err, sub.Unsubscribe(sctx))
	}
	deps.Hub.Close()
	err = multierr.Append(err, app.ShutdownWithContext(sctx))
	err = multierr.Append(err, b.Close(sctx))
	return err
}
