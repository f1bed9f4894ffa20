// Package seeder fills a database with a demo account, quit plan and craving
// history for local development.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/auth"
)

// UserStore looks up existing accounts.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Registrar creates accounts with hashed passwords and default preferences.
// Implemented by auth.Service.
type Registrar interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
}

// PlanStore writes quit plans directly, bypassing the quit date window so
// that demo plans can start in the past.
type PlanStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.QuitPlan, error)
	Create(ctx context.Context, p *domain.QuitPlan) (*domain.QuitPlan, error)
}

// CravingStore writes cravings with back-dated timestamps.
type CravingStore interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Craving, error)
	Create(ctx context.Context, c *domain.Craving) (*domain.Craving, error)
}

// Unlocker evaluates milestones for the user on the context.
// Implemented by milestone.Service.
type Unlocker interface {
	CheckAndUnlockMilestones(ctx context.Context) ([]domain.UnlockRecord, error)
}

// Deps groups the stores the pipeline writes through.
type Deps struct {
	Users     UserStore
	Registrar Registrar
	Plans     PlanStore
	Cravings  CravingStore
	Unlocker  Unlocker
}
