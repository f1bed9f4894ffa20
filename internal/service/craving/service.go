// Package craving records cravings and summarises them.
package craving

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

type cravingRepo interface {
	Create(ctx context.Context, c *domain.Craving) (*domain.Craving, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Craving, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Craving, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch domain.CravingPatch) (*domain.Craving, error)
	Totals(ctx context.Context, userID uuid.UUID, since time.Time) (domain.CravingTotals, error)
	TriggerCounts(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]domain.TriggerCount, error)
	CountByDay(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayCount, error)
}

// Service implements craving operations.
type Service struct {
	log      *slog.Logger
	cravings cravingRepo
	clock    clockwork.Clock
}

// NewService creates a new craving service.
func NewService(logger *slog.Logger, cravings cravingRepo, clock clockwork.Clock) *Service {
	return &Service{
		log:      logger.With("service", "craving"),
		cravings: cravings,
		clock:    clock,
	}
}
