package milestone

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

// memUnlockRepo is an in-memory unlockRepo with the same one-row-per-pair
// guarantee as the user_milestones unique constraint.
type memUnlockRepo struct {
	mu      sync.Mutex
	records map[[2]uuid.UUID]domain.UnlockRecord
	inserts int
}

var _ unlockRepo = (*memUnlockRepo)(nil)

func newMemUnlockRepo() *memUnlockRepo {
	return &memUnlockRepo{records: make(map[[2]uuid.UUID]domain.UnlockRecord)}
}

func (r *memUnlockRepo) Get(_ context.Context, userID, milestoneID uuid.UUID) (*domain.UnlockRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[[2]uuid.UUID{userID, milestoneID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (r *memUnlockRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.UnlockRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.UnlockRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnlockedAt.After(out[j].UnlockedAt) })
	return out, nil
}

func (r *memUnlockRepo) InsertIfAbsent(_ context.Context, userID, milestoneID uuid.UUID, at time.Time) (*domain.UnlockRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inserts++
	key := [2]uuid.UUID{userID, milestoneID}
	if _, ok := r.records[key]; ok {
		return nil, nil
	}
	rec := domain.UnlockRecord{ID: uuid.New(), UserID: userID, MilestoneID: milestoneID, UnlockedAt: at}
	r.records[key] = rec
	return &rec, nil
}

func (r *memUnlockRepo) SetShared(_ context.Context, userID, milestoneID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]uuid.UUID{userID, milestoneID}
	rec, ok := r.records[key]
	if !ok {
		return false, nil
	}
	rec.Shared = true
	r.records[key] = rec
	return true, nil
}

func (r *memUnlockRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
