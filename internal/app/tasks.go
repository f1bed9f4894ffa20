package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quitsmoke-backend/internal/app/seeder"
	"github.com/heartmarshall/quitsmoke-backend/internal/config"
)

// Seed runs the demo data pipeline for the given phases (all when empty).
func Seed(ctx context.Context, cfg *config.Config, seedCfg seeder.Config, phases []string, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()
	c := newContainer(pool, cfg, logger, clock)

	p := seeder.NewPipeline(logger, seeder.Deps{
		Users:     c.users,
		Registrar: c.auth,
		Plans:     c.plans,
		Cravings:  c.cravings,
		Unlocker:  c.milestone,
	}, seedCfg, clock)

	if err := p.Run(ctx, phases); err != nil {
		return err
	}

	for name, r := range p.Results() {
		logger.Info("seed phase",
			slog.String("phase", name),
			slog.Int("inserted", r.Inserted),
			slog.Int("skipped", r.Skipped),
			slog.Duration("duration", r.Duration),
		)
	}
	if p.HasErrors() {
		return errors.New("seed finished with errors")
	}
	return nil
}

// CleanupTokens deletes expired and revoked refresh tokens.
func CleanupTokens(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	c := newContainer(pool, cfg, logger, clockwork.NewRealClock())

	deleted, err := c.auth.CleanupExpiredTokens(ctx)
	if err != nil {
		return fmt.Errorf("cleanup tokens: %w", err)
	}
	logger.Info("token cleanup complete", slog.Int("deleted", deleted))
	return nil
}
