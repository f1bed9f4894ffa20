// Package user implements profile, preferences and account management for
// the authenticated user.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch, now time.Time) (*domain.User, error)
	Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error
	GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	UpdatePreferences(ctx context.Context, p *domain.Preferences) (*domain.Preferences, error)
}

type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile and preferences operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	audit  auditLogger
	tx     txManager
	clock  clockwork.Clock
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	audit auditLogger,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		tokens: tokens,
		audit:  audit,
		tx:     tx,
		clock:  clock,
	}
}
