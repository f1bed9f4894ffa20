// Package milestone implements read access to the milestone catalog.
package milestone

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

// Repo reads catalog entries from PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Columns is the select list for a catalog row, qualified with alias m.
// The unlock repository joins on it.
const Columns = `m.id, m.name, m.description, m.category,
	m.duration_hours::float8 AS duration_hours,
	m.threshold_value::float8 AS threshold_value,
	m.threshold_unit, m.icon, m.created_at`

// ListAll returns the whole catalog ordered by category, then threshold.
func (r *Repo) ListAll(ctx context.Context) ([]domain.MilestoneDefinition, error) {
	var rows []Row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+Columns+` FROM milestones m ORDER BY m.category, m.threshold_value, m.name`)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}

	out := make([]domain.MilestoneDefinition, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out, nil
}

// Row is the scan target for Columns.
type Row struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	Category       string    `db:"category"`
	DurationHours  float64   `db:"duration_hours"`
	ThresholdValue float64   `db:"threshold_value"`
	ThresholdUnit  string    `db:"threshold_unit"`
	Icon           *string   `db:"icon"`
	CreatedAt      time.Time `db:"created_at"`
}

// ToDomain converts the row into a catalog entry.
func (r Row) ToDomain() domain.MilestoneDefinition {
	return domain.MilestoneDefinition{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Category:       domain.MilestoneCategory(r.Category),
		DurationHours:  r.DurationHours,
		ThresholdValue: r.ThresholdValue,
		ThresholdUnit:  domain.ThresholdUnit(r.ThresholdUnit),
		Icon:           r.Icon,
		CreatedAt:      r.CreatedAt,
	}
}
