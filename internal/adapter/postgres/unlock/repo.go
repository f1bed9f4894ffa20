// Package unlock implements the user milestone unlock repository.
//
// The (user_id, milestone_id) unique constraint is the only synchronisation
// point for unlocking: InsertIfAbsent relies on ON CONFLICT DO NOTHING so
// concurrent callers never observe a duplicate-key error.
package unlock

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres/milestone"
	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

// Repo provides unlock record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new unlock repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const recordColumns = `id, user_id, milestone_id, unlocked_at, shared`

// Get returns the unlock record for (userID, milestoneID) or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID, milestoneID uuid.UUID) (*domain.UnlockRecord, error) {
	var row recordRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+recordColumns+` FROM user_milestones WHERE user_id = $1 AND milestone_id = $2`,
		userID, milestoneID)
	if err != nil {
		return nil, postgres.MapError(err, "user_milestone", milestoneID)
	}
	return row.toDomain(), nil
}

// ListByUser returns every unlock of the user joined with its catalog
// entry, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UnlockRecord, error) {
	var rows []joinedRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT um.id AS unlock_id, um.user_id, um.milestone_id, um.unlocked_at, um.shared, `+milestone.Columns+`
		 FROM user_milestones um
		 JOIN milestones m ON m.id = um.milestone_id
		 WHERE um.user_id = $1
		 ORDER BY um.unlocked_at DESC, m.name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}

	out := make([]domain.UnlockRecord, len(rows))
	for i, row := range rows {
		def := row.Row.ToDomain()
		out[i] = domain.UnlockRecord{
			ID:          row.UnlockID,
			UserID:      row.UserID,
			MilestoneID: row.MilestoneID,
			UnlockedAt:  row.UnlockedAt,
			Shared:      row.Shared,
			Milestone:   &def,
		}
	}
	return out, nil
}

// InsertIfAbsent creates the unlock record unless one already exists.
// It returns the new record, or (nil, nil) when the milestone was already
// unlocked for the user. A missing user or milestone yields domain.ErrNotFound.
func (r *Repo) InsertIfAbsent(ctx context.Context, userID, milestoneID uuid.UUID, at time.Time) (*domain.UnlockRecord, error) {
	query, args, err := postgres.Builder().
		Insert("user_milestones").
		Columns("user_id", "milestone_id", "unlocked_at").
		Values(userID, milestoneID, at).
		Suffix("ON CONFLICT (user_id, milestone_id) DO NOTHING RETURNING " + recordColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build unlock insert: %w", err)
	}

	var row recordRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...)
	if pgxscan.NotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "user_milestone", milestoneID)
	}
	return row.toDomain(), nil
}

// SetShared marks an unlocked milestone as shared. It reports false when
// the user has not unlocked the milestone.
func (r *Repo) SetShared(ctx context.Context, userID, milestoneID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Update("user_milestones").
		Set("shared", true).
		Where(squirrel.Eq{"user_id": userID, "milestone_id": milestoneID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build share update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "user_milestone", milestoneID)
	}
	return tag.RowsAffected() > 0, nil
}

type recordRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	MilestoneID uuid.UUID `db:"milestone_id"`
	UnlockedAt  time.Time `db:"unlocked_at"`
	Shared      bool      `db:"shared"`
}

func (r recordRow) toDomain() *domain.UnlockRecord {
	return &domain.UnlockRecord{
		ID:          r.ID,
		UserID:      r.UserID,
		MilestoneID: r.MilestoneID,
		UnlockedAt:  r.UnlockedAt,
		Shared:      r.Shared,
	}
}

type joinedRow struct {
	UnlockID    uuid.UUID `db:"unlock_id"`
	UserID      uuid.UUID `db:"user_id"`
	MilestoneID uuid.UUID `db:"milestone_id"`
	UnlockedAt  time.Time `db:"unlocked_at"`
	Shared      bool      `db:"shared"`
	milestone.Row
}
