// Package quitplan manages a user's single quit plan.
package quitplan

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

type quitPlanRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.QuitPlan, error)
	Create(ctx context.Context, p *domain.QuitPlan) (*domain.QuitPlan, error)
	Update(ctx context.Context, p *domain.QuitPlan) (*domain.QuitPlan, error)
}

type auditLogger interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// QuitDateWindow bounds the quit date accepted at write time, relative to now.
type QuitDateWindow struct {
	Grace    time.Duration // how far in the past
	MaxAhead time.Duration // how far in the future
}

// DefaultQuitDateWindow allows yesterday through two weeks ahead.
var DefaultQuitDateWindow = QuitDateWindow{Grace: 24 * time.Hour, MaxAhead: 14 * 24 * time.Hour}

// Service implements quit plan operations.
type Service struct {
	log    *slog.Logger
	plans  quitPlanRepo
	audit  auditLogger
	tx     txManager
	clock  clockwork.Clock
	window QuitDateWindow
}

// NewService creates a new quit plan service.
func NewService(
	logger *slog.Logger,
	plans quitPlanRepo,
	audit auditLogger,
	tx txManager,
	clock clockwork.Clock,
	window QuitDateWindow,
) *Service {
	return &Service{
		log:    logger.With("service", "quitplan"),
		plans:  plans,
		audit:  audit,
		tx:     tx,
		clock:  clock,
		window: window,
	}
}

// PlanResult is a plan together with its savings projection.
type PlanResult struct {
	Plan    *domain.QuitPlan
	Savings domain.Savings
}
