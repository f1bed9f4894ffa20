// Package audit implements the append-only audit log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = "id, user_id, entity_type, entity_id, action, changes, created_at"

// Create inserts an audit record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rec domain.AuditRecord) (domain.AuditRecord, error) {
	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert("audit_log").
		Columns("id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at").
		Values(rec.ID, rec.UserID, string(rec.EntityType), rec.EntityID, string(rec.Action), changesJSON, rec.CreatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build audit insert: %w", err)
	}

	var row auditRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", rec.ID)
	}
	return row.toDomain()
}

// Log creates an audit record and discards the result.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) error {
	_, err := r.Create(ctx, rec)
	return err
}

// ListByUser returns a user's audit records, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	qb := postgres.Builder().
		Select(columns).
		From("audit_log").
		Where("user_id = ?", userID).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}
	if offset > 0 {
		qb = qb.Offset(uint64(offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit list: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list audit_records for user %s: %w", userID, err)
	}

	out := make([]domain.AuditRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

type auditRow struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r auditRow) toDomain() (domain.AuditRecord, error) {
	rec := domain.AuditRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		EntityType: domain.AuditEntity(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		CreatedAt:  r.CreatedAt,
	}
	if len(r.Changes) > 0 {
		if err := json.Unmarshal(r.Changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", r.ID, err)
		}
	}
	return rec, nil
}
