// Package app wires configuration, storage, services and transport into the
// runnable commands of the quitsmoke binary.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quitsmoke-backend/internal/config"
	"github.com/heartmarshall/quitsmoke-backend/internal/metrics"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/middleware"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/rest"
)

// Run serves the HTTP API until ctx is canceled, then shuts down gracefully
// within cfg.Server.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Metrics.Enabled {
		if err := metrics.RegisterPool(postgres.PoolStats(pool)); err != nil {
			logger.Warn("register pool metrics", slog.String("error", err.Error()))
		}
	}

	clock := clockwork.NewRealClock()
	limiter := middleware.NewRateLimiter(clock, cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newHandler(pool, cfg, logger, clock, limiter),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func newHandler(
	pool *pgxpool.Pool,
	cfg *config.Config,
	logger *slog.Logger,
	clock clockwork.Clock,
	limiter *middleware.RateLimiter,
) http.Handler {
	c := newContainer(pool, cfg, logger, clock)

	handlers := rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion(), clock),
		Auth:     rest.NewAuthHandler(c.auth, logger),
		User:     rest.NewUserHandler(c.user, logger),
		QuitPlan: rest.NewQuitPlanHandler(c.quitPlan, logger),
		Craving:  rest.NewCravingHandler(c.craving, logger),
		Progress: rest.NewProgressHandler(c.statistics, c.milestone, clock, logger),
	}

	return rest.NewRouter(handlers, c.auth, limiter, rest.RouterConfig{
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Metrics:   cfg.Metrics,
	}, logger)
}
