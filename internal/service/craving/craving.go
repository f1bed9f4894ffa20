package craving

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/metrics"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

// Create logs a new unresolved craving for the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Craving, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	relief := input.ReliefTechniquesUsed
	if relief == nil {
		relief = []string{}
	}

	created, err := s.cravings.Create(ctx, &domain.Craving{
		ID:                   uuid.New(),
		UserID:               userID,
		Intensity:            input.Intensity,
		Triggers:             input.Triggers,
		ReliefTechniquesUsed: relief,
		Notes:                input.Notes,
		CreatedAt:            s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("craving.Create: %w", err)
	}

	metrics.CravingsLogged.Inc()
	s.log.InfoContext(ctx, "craving logged",
		slog.String("user_id", userID.String()),
		slog.Int("intensity", created.Intensity),
	)

	return created, nil
}

// List returns a page of the caller's cravings, newest first.
// limit defaults to 50 and is capped at 100.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Craving, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	limit, offset = normalizePage(limit, offset)
	items, err := s.cravings.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("craving.List: %w", err)
	}
	if items == nil {
		items = []domain.Craving{}
	}
	return items, nil
}

// Get returns one of the caller's cravings or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Craving, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.cravings.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("craving.Get: %w", err)
	}
	return c, nil
}

// Update changes the mutable fields of one of the caller's cravings.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Craving, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.cravings.Update(ctx, userID, id, domain.CravingPatch{
		Resolved:             input.Resolved,
		Duration:             input.Duration,
		ReliefTechniquesUsed: input.ReliefTechniquesUsed,
	})
	if err != nil {
		return nil, fmt.Errorf("craving.Update: %w", err)
	}

	s.log.InfoContext(ctx, "craving updated",
		slog.String("user_id", userID.String()),
		slog.String("craving_id", id.String()),
		slog.Bool("resolved", c.Resolved),
	)
	return c, nil
}
