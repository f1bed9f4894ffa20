// Package craving implements the Craving repository using PostgreSQL.
// List and aggregate queries are assembled with squirrel; filters on the
// trailing window are optional.
package craving

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

// Repo provides craving persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new craving repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "user_id", "intensity", "triggers", "relief_techniques_used",
	"duration", "notes", "resolved", "created_at",
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

// Create inserts a craving and returns the stored row.
func (r *Repo) Create(ctx context.Context, c *domain.Craving) (*domain.Craving, error) {
	query, args, err := postgres.Builder().
		Insert("cravings").
		Columns(columns...).
		Values(c.ID, c.UserID, c.Intensity, c.Triggers, nonNil(c.ReliefTechniquesUsed),
			c.Duration, c.Notes, c.Resolved, c.CreatedAt).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert craving query: %w", err)
	}

	var row cravingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "craving", c.ID)
	}
	return row.toDomain(), nil
}

// GetByID returns a craving owned by userID, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Craving, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("cravings").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get craving query: %w", err)
	}

	var row cravingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "craving", id)
	}
	return row.toDomain(), nil
}

// List returns a page of the user's cravings, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Craving, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("cravings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cravings query: %w", err)
	}
	return r.selectCravings(ctx, query, args...)
}

// ListSince returns the user's cravings created at or after since, newest first.
func (r *Repo) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Craving, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("cravings").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cravings since query: %w", err)
	}
	return r.selectCravings(ctx, query, args...)
}

// Update applies patch to a craving owned by userID.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, patch domain.CravingPatch) (*domain.Craving, error) {
	if patch.Resolved == nil && patch.Duration == nil && patch.ReliefTechniquesUsed == nil {
		return r.GetByID(ctx, userID, id)
	}

	qb := postgres.Builder().
		Update("cravings").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning())

	if patch.Resolved != nil {
		qb = qb.Set("resolved", *patch.Resolved)
	}
	if patch.Duration != nil {
		qb = qb.Set("duration", *patch.Duration)
	}
	if patch.ReliefTechniquesUsed != nil {
		qb = qb.Set("relief_techniques_used", patch.ReliefTechniquesUsed)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update craving query: %w", err)
	}

	var row cravingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "craving", id)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

// CountResolved returns how many of the user's cravings are resolved.
func (r *Repo) CountResolved(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM cravings WHERE user_id = $1 AND resolved`, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count resolved cravings: %w", err)
	}
	return n, nil
}

// Totals aggregates count, resolved count and mean intensity since the
// given instant. A zero since covers all time.
func (r *Repo) Totals(ctx context.Context, userID uuid.UUID, since time.Time) (domain.CravingTotals, error) {
	qb := postgres.Builder().
		Select(
			"count(*) AS total",
			"count(*) FILTER (WHERE resolved) AS resolved",
			"COALESCE(avg(intensity), 0)::float8 AS average_intensity",
		).
		From("cravings").
		Where(squirrel.Eq{"user_id": userID})
	qb = withSince(qb, since)

	query, args, err := qb.ToSql()
	if err != nil {
		return domain.CravingTotals{}, fmt.Errorf("build craving totals query: %w", err)
	}

	var row struct {
		Total            int     `db:"total"`
		Resolved         int     `db:"resolved"`
		AverageIntensity float64 `db:"average_intensity"`
	}
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.CravingTotals{}, fmt.Errorf("craving totals: %w", err)
	}
	return domain.CravingTotals{
		Total:            row.Total,
		Resolved:         row.Resolved,
		AverageIntensity: row.AverageIntensity,
	}, nil
}

// TriggerCounts counts trigger labels across the user's cravings, most
// frequent first. A zero since covers all time; limit 0 means no limit.
func (r *Repo) TriggerCounts(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]domain.TriggerCount, error) {
	qb := postgres.Builder().
		Select("t AS label", "count(*) AS n").
		From("cravings, unnest(triggers) AS t").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("t").
		OrderBy("n DESC", "t")
	qb = withSince(qb, since)
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trigger counts query: %w", err)
	}

	var rows []struct {
		Label string `db:"label"`
		N     int    `db:"n"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("trigger counts: %w", err)
	}

	out := make([]domain.TriggerCount, len(rows))
	for i, row := range rows {
		out[i] = domain.TriggerCount{Trigger: row.Label, Count: row.N}
	}
	return out, nil
}

// CountByDay groups the user's cravings by UTC calendar day, newest first.
func (r *Repo) CountByDay(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayCount, error) {
	qb := postgres.Builder().
		Select("(created_at AT TIME ZONE 'UTC')::date AS day", "count(*) AS n").
		From("cravings").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("day").
		OrderBy("day DESC")
	qb = withSince(qb, since)

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cravings by day query: %w", err)
	}

	var rows []struct {
		Day time.Time `db:"day"`
		N   int       `db:"n"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("cravings by day: %w", err)
	}

	out := make([]domain.DayCount, len(rows))
	for i, row := range rows {
		out[i] = domain.DayCount{Date: row.Day, Count: row.N}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectCravings(ctx context.Context, query string, args ...any) ([]domain.Craving, error) {
	var rows []cravingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select cravings: %w", err)
	}

	out := make([]domain.Craving, len(rows))
	for i, row := range rows {
		out[i] = *row.toDomain()
	}
	return out, nil
}

func withSince(qb squirrel.SelectBuilder, since time.Time) squirrel.SelectBuilder {
	if since.IsZero() {
		return qb
	}
	return qb.Where(squirrel.GtOrEq{"created_at": since})
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type cravingRow struct {
	ID                   uuid.UUID `db:"id"`
	UserID               uuid.UUID `db:"user_id"`
	Intensity            int       `db:"intensity"`
	Triggers             []string  `db:"triggers"`
	ReliefTechniquesUsed []string  `db:"relief_techniques_used"`
	Duration             *int      `db:"duration"`
	Notes                *string   `db:"notes"`
	Resolved             bool      `db:"resolved"`
	CreatedAt            time.Time `db:"created_at"`
}

func (r cravingRow) toDomain() *domain.Craving {
	return &domain.Craving{
		ID:                   r.ID,
		UserID:               r.UserID,
		Intensity:            r.Intensity,
		Triggers:             nonNil(r.Triggers),
		ReliefTechniquesUsed: nonNil(r.ReliefTechniquesUsed),
		Duration:             r.Duration,
		Notes:                r.Notes,
		Resolved:             r.Resolved,
		CreatedAt:            r.CreatedAt,
	}
}
