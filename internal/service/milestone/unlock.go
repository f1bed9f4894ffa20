package milestone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

// CheckAndUnlockMilestones creates unlock records for every reached milestone
// the user has not unlocked yet and returns only the records created by this
// call. Concurrent callers never produce duplicates: storage keeps one row per
// (user, milestone) and a lost race yields no record.
func (s *Service) CheckAndUnlockMilestones(ctx context.Context) ([]domain.UnlockRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("milestone.CheckAndUnlockMilestones: %w", err)
	}
	if st == nil {
		return []domain.UnlockRecord{}, nil
	}

	created, err := s.unlockReached(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("milestone.CheckAndUnlockMilestones: %w", err)
	}
	return created, nil
}

// RefreshProgress unlocks newly reached milestones and returns progress that
// already reflects them.
func (s *Service) RefreshProgress(ctx context.Context) ([]domain.MilestoneProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("milestone.RefreshProgress: %w", err)
	}
	if st == nil {
		return []domain.MilestoneProgress{}, nil
	}

	if _, err := s.unlockReached(ctx, st); err != nil {
		return nil, fmt.Errorf("milestone.RefreshProgress: %w", err)
	}
	return Evaluate(st.catalog, st.unlocks, st.inputs), nil
}

// unlockReached inserts unlocks for reached milestones and adds them to
// st.unlocks. Only records created by this call are returned.
func (s *Service) unlockReached(ctx context.Context, st *userState) ([]domain.UnlockRecord, error) {
	created := []domain.UnlockRecord{}

	for _, def := range st.catalog {
		if _, done := st.unlocks[def.ID]; done {
			continue
		}
		if Progress(def, st.inputs) < 100 {
			continue
		}

		rec, err := s.unlocks.InsertIfAbsent(ctx, st.userID, def.ID, st.now)
		if err != nil {
			return nil, fmt.Errorf("unlock %s: %w", def.ID, err)
		}
		if rec == nil {
			// Another request created it first; read its row so progress
			// still reports the milestone as unlocked.
			existing, err := s.unlocks.Get(ctx, st.userID, def.ID)
			if err != nil {
				return nil, fmt.Errorf("unlock %s: %w", def.ID, err)
			}
			d := def
			existing.Milestone = &d
			st.unlocks[def.ID] = *existing
			continue
		}

		d := def
		rec.Milestone = &d
		st.unlocks[def.ID] = *rec
		created = append(created, *rec)

		if s.onUnlock != nil {
			s.onUnlock(def)
		}
		s.log.InfoContext(ctx, "milestone unlocked",
			slog.String("user_id", st.userID.String()),
			slog.String("milestone", def.Name),
			slog.String("category", def.Category.String()),
		)
	}

	return created, nil
}
