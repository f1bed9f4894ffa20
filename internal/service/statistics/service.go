// Package statistics derives smoke-free metrics from a user's quit plan.
// The calculations are pure functions of (plan, now); Service only loads the
// plan and supplies the clock.
package statistics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

// quitPlanRepo defines the quit plan access needed by the statistics service.
type quitPlanRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.QuitPlan, error)
}

// Service computes statistics for the authenticated user.
type Service struct {
	log                 *slog.Logger
	plans               quitPlanRepo
	clock               clockwork.Clock
	minutesPerCigarette int
}

// NewService creates a new statistics service.
func NewService(logger *slog.Logger, plans quitPlanRepo, clock clockwork.Clock, minutesPerCigarette int) *Service {
	if minutesPerCigarette <= 0 {
		minutesPerCigarette = DefaultMinutesPerCigarette
	}
	return &Service{
		log:                 logger.With("service", "statistics"),
		plans:               plans,
		clock:               clock,
		minutesPerCigarette: minutesPerCigarette,
	}
}

// GetStatistics returns the user's statistics, or nil when no quit plan exists.
func (s *Service) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	plan, err := s.loadPlan(ctx)
	if err != nil || plan == nil {
		return nil, err
	}

	stats := Compute(plan, s.clock.Now(), s.minutesPerCigarette)
	return &stats, nil
}

// GetSmokeFreeTimer returns the elapsed smoke-free time, or nil when no quit
// plan exists.
func (s *Service) GetSmokeFreeTimer(ctx context.Context) (*domain.SmokeFreeDuration, error) {
	plan, err := s.loadPlan(ctx)
	if err != nil || plan == nil {
		return nil, err
	}

	d := SmokeFreeDuration(plan.QuitDate, s.clock.Now())
	return &d, nil
}

// loadPlan returns the caller's plan or (nil, nil) when there is none.
func (s *Service) loadPlan(ctx context.Context) (*domain.QuitPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plan, err := s.plans.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.DebugContext(ctx, "no quit plan", slog.String("user_id", userID.String()))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("statistics.loadPlan: %w", err)
	}
	return plan, nil
}
