// Package milestone evaluates catalog milestones against a user's progress
// and records unlocks.
package milestone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/statistics"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

type quitPlanRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.QuitPlan, error)
}

type cravingRepo interface {
	CountResolved(ctx context.Context, userID uuid.UUID) (int, error)
}

type catalogRepo interface {
	ListAll(ctx context.Context) ([]domain.MilestoneDefinition, error)
}

type unlockRepo interface {
	Get(ctx context.Context, userID, milestoneID uuid.UUID) (*domain.UnlockRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UnlockRecord, error)
	InsertIfAbsent(ctx context.Context, userID, milestoneID uuid.UUID, at time.Time) (*domain.UnlockRecord, error)
	SetShared(ctx context.Context, userID, milestoneID uuid.UUID) (bool, error)
}

// UnlockObserver is notified once per newly created unlock record.
type UnlockObserver func(def domain.MilestoneDefinition)

// Service implements milestone progress and unlock operations.
type Service struct {
	log      *slog.Logger
	plans    quitPlanRepo
	cravings cravingRepo
	catalog  catalogRepo
	unlocks  unlockRepo
	clock    clockwork.Clock
	onUnlock UnlockObserver

	catalogMu     sync.Mutex
	catalogCache  []domain.MilestoneDefinition
	catalogLoaded bool
}

// NewService creates a new milestone service. onUnlock may be nil.
func NewService(
	logger *slog.Logger,
	plans quitPlanRepo,
	cravings cravingRepo,
	catalog catalogRepo,
	unlocks unlockRepo,
	clock clockwork.Clock,
	onUnlock UnlockObserver,
) *Service {
	return &Service{
		log:      logger.With("service", "milestone"),
		plans:    plans,
		cravings: cravings,
		catalog:  catalog,
		unlocks:  unlocks,
		clock:    clock,
		onUnlock: onUnlock,
	}
}

// userState is everything the progress rules need for one user at one instant.
type userState struct {
	userID  uuid.UUID
	now     time.Time
	catalog []domain.MilestoneDefinition
	unlocks map[uuid.UUID]domain.UnlockRecord
	inputs  Inputs
}

// loadState returns (nil, nil) when the user has no quit plan.
func (s *Service) loadState(ctx context.Context, userID uuid.UUID) (*userState, error) {
	plan, err := s.plans.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load quit plan: %w", err)
	}

	var (
		catalog  []domain.MilestoneDefinition
		unlocked []domain.UnlockRecord
		resolved int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = s.loadCatalog(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		unlocked, err = s.unlocks.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list unlocks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		resolved, err = s.cravings.CountResolved(gctx, userID)
		if err != nil {
			return fmt.Errorf("count resolved cravings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	elapsed := statistics.SmokeFreeDuration(plan.QuitDate, now)

	st := &userState{
		userID:  userID,
		now:     now,
		catalog: catalog,
		unlocks: make(map[uuid.UUID]domain.UnlockRecord, len(unlocked)),
		inputs: Inputs{
			HoursSinceQuit:   statistics.HoursSinceQuit(plan.QuitDate, now),
			ResolvedCravings: resolved,
			MoneySaved:       statistics.MoneySaved(plan.Habits(), elapsed),
		},
	}
	for _, rec := range unlocked {
		st.unlocks[rec.MilestoneID] = rec
	}
	return st, nil
}

// loadCatalog returns the milestone catalog, reading storage only once per
// process. Entries with an inconsistent threshold are skipped.
func (s *Service) loadCatalog(ctx context.Context) ([]domain.MilestoneDefinition, error) {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	if s.catalogLoaded {
		return s.catalogCache, nil
	}

	all, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list milestone catalog: %w", err)
	}

	valid := make([]domain.MilestoneDefinition, 0, len(all))
	for _, def := range all {
		if err := def.Validate(); err != nil {
			s.log.WarnContext(ctx, "skipping milestone", slog.String("error", err.Error()))
			continue
		}
		valid = append(valid, def)
	}

	s.catalogCache = valid
	s.catalogLoaded = true
	return valid, nil
}

// GetMilestoneProgress returns progress for every catalog milestone.
// The result is empty when the user has no quit plan.
func (s *Service) GetMilestoneProgress(ctx context.Context) ([]domain.MilestoneProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("milestone.GetMilestoneProgress: %w", err)
	}
	if st == nil {
		return []domain.MilestoneProgress{}, nil
	}
	return Evaluate(st.catalog, st.unlocks, st.inputs), nil
}

// ListUnlocked returns the user's unlock records with their definitions,
// newest first.
func (s *Service) ListUnlocked(ctx context.Context) ([]domain.UnlockRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.unlocks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("milestone.ListUnlocked: %w", err)
	}
	if records == nil {
		records = []domain.UnlockRecord{}
	}
	return records, nil
}

// GetUnlock returns the user's unlock record for a milestone.
// It returns domain.ErrNotFound when the milestone is not unlocked.
func (s *Service) GetUnlock(ctx context.Context, milestoneID uuid.UUID) (*domain.UnlockRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.unlocks.Get(ctx, userID, milestoneID)
	if err != nil {
		return nil, fmt.Errorf("milestone.GetUnlock: %w", err)
	}
	return rec, nil
}

// GetBestStreak returns the longest smoke-free run in whole days, or 0
// without a quit plan. Relapses are not tracked, so the current run is the best.
func (s *Service) GetBestStreak(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	plan, err := s.plans.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("milestone.GetBestStreak: %w", err)
	}
	return statistics.SmokeFreeDuration(plan.QuitDate, s.clock.Now()).TotalDays, nil
}
