// Package quitplan implements the QuitPlan repository using PostgreSQL.
package quitplan

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

// Repo provides quit plan persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new quit plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, user_id, quit_date, cigarettes_per_day, cost_per_pack::float8 AS cost_per_pack,
	cigarettes_per_pack, motivations, created_at, updated_at`

// GetByUserID returns the plan of a user, or domain.ErrNotFound.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.QuitPlan, error) {
	var row planRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+columns+` FROM quit_plans WHERE user_id = $1`, userID)
	if err != nil {
		return nil, postgres.MapError(err, "quit_plan", userID)
	}
	return row.toDomain(), nil
}

// Create inserts a plan. A second plan for the same user yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.QuitPlan) (*domain.QuitPlan, error) {
	var row planRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO quit_plans (id, user_id, quit_date, cigarettes_per_day, cost_per_pack,
		     cigarettes_per_pack, motivations, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		 RETURNING `+columns,
		p.ID, p.UserID, p.QuitDate, p.CigarettesPerDay, p.CostPerPack,
		p.CigarettesPerPack, p.Motivations, p.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "quit_plan", p.UserID)
	}
	return row.toDomain(), nil
}

// Update overwrites the mutable fields of the user's plan.
func (r *Repo) Update(ctx context.Context, p *domain.QuitPlan) (*domain.QuitPlan, error) {
	var row planRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`UPDATE quit_plans SET
		     quit_date = $2,
		     cigarettes_per_day = $3,
		     cost_per_pack = $4,
		     cigarettes_per_pack = $5,
		     motivations = $6,
		     updated_at = $7
		 WHERE user_id = $1
		 RETURNING `+columns,
		p.UserID, p.QuitDate, p.CigarettesPerDay, p.CostPerPack,
		p.CigarettesPerPack, p.Motivations, p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "quit_plan", p.UserID)
	}
	return row.toDomain(), nil
}

type planRow struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	QuitDate          time.Time `db:"quit_date"`
	CigarettesPerDay  int       `db:"cigarettes_per_day"`
	CostPerPack       float64   `db:"cost_per_pack"`
	CigarettesPerPack int       `db:"cigarettes_per_pack"`
	Motivations       []string  `db:"motivations"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r planRow) toDomain() *domain.QuitPlan {
	motivations := r.Motivations
	if motivations == nil {
		motivations = []string{}
	}
	return &domain.QuitPlan{
		ID:                r.ID,
		UserID:            r.UserID,
		QuitDate:          r.QuitDate,
		CigarettesPerDay:  r.CigarettesPerDay,
		CostPerPack:       r.CostPerPack,
		CigarettesPerPack: r.CigarettesPerPack,
		Motivations:       motivations,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
