package craving

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

// Analytics summarises the caller's cravings over the trailing days
// (default 30, at most 365).
func (s *Service) Analytics(ctx context.Context, days int) (*domain.CravingAnalytics, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	since := s.clock.Now().UTC().Add(-time.Duration(normalizeDays(days)) * 24 * time.Hour)

	var (
		totals   domain.CravingTotals
		triggers []domain.TriggerCount
		byDay    []domain.DayCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.cravings.Totals(gctx, userID, since)
		return err
	})
	g.Go(func() error {
		var err error
		triggers, err = s.cravings.TriggerCounts(gctx, userID, since, topTriggerCount)
		return err
	})
	g.Go(func() error {
		var err error
		byDay, err = s.cravings.CountByDay(gctx, userID, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("craving.Analytics: %w", err)
	}

	if triggers == nil {
		triggers = []domain.TriggerCount{}
	}
	if byDay == nil {
		byDay = []domain.DayCount{}
	}

	return &domain.CravingAnalytics{
		TotalCravings:      totals.Total,
		AverageIntensity:   roundTenth(totals.AverageIntensity),
		MostCommonTriggers: triggers,
		CravingsByDay:      byDay,
		ResolutionRate:     resolutionRate(totals),
	}, nil
}

// Triggers returns how often each trigger was reported over all time,
// most frequent first.
func (s *Service) Triggers(ctx context.Context) ([]domain.TriggerCount, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	counts, err := s.cravings.TriggerCounts(ctx, userID, time.Time{}, 0)
	if err != nil {
		return nil, fmt.Errorf("craving.Triggers: %w", err)
	}
	if counts == nil {
		counts = []domain.TriggerCount{}
	}
	return counts, nil
}

// resolutionRate is the resolved share in percent, one decimal.
func resolutionRate(t domain.CravingTotals) float64 {
	if t.Total == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(t.Resolved)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(t.Total))).
		Round(1).
		InexactFloat64()
}

func roundTenth(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
