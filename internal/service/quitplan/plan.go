package quitplan

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/statistics"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

// Create stores the caller's quit plan. A second plan yields
// domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput) (*PlanResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now().UTC()
	if err := s.window.checkQuitDate(input.QuitDate, now); err != nil {
		return nil, err
	}

	perPack := input.CigarettesPerPack
	if perPack == 0 {
		perPack = domain.DefaultCigarettesPerPack
	}

	plan := &domain.QuitPlan{
		ID:                uuid.New(),
		UserID:            userID,
		QuitDate:          input.QuitDate.UTC(),
		CigarettesPerDay:  input.CigarettesPerDay,
		CostPerPack:       input.CostPerPack,
		CigarettesPerPack: perPack,
		Motivations:       input.Motivations,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var created *domain.QuitPlan
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.plans.Create(txCtx, plan)
		if err != nil {
			return fmt.Errorf("create plan: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.AuditEntityQuitPlan,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"quit_date":          created.QuitDate.Format(time.RFC3339),
				"cigarettes_per_day": created.CigarettesPerDay,
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("quitplan.Create: %w", err)
	}

	s.log.InfoContext(ctx, "quit plan created",
		slog.String("user_id", userID.String()),
		slog.Time("quit_date", created.QuitDate),
	)

	return withSavings(created), nil
}

// Get returns the caller's plan or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context) (*PlanResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plan, err := s.plans.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("quitplan.Get: %w", err)
	}
	return withSavings(plan), nil
}

// Update applies a partial update to the caller's plan. An empty update
// returns the current plan unchanged.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*PlanResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now().UTC()
	if input.QuitDate != nil {
		if err := s.window.checkQuitDate(*input.QuitDate, now); err != nil {
			return nil, err
		}
	}

	var updated *domain.QuitPlan
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.plans.GetByUserID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get plan: %w", err)
		}
		if input.IsEmpty() {
			updated = current
			return nil
		}

		next := applyUpdate(*current, input)
		changes := diffPlans(*current, next)
		if len(changes) == 0 {
			updated = current
			return nil
		}

		next.UpdatedAt = now
		updated, err = s.plans.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update plan: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.AuditEntityQuitPlan,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("quitplan.Update: %w", err)
	}

	s.log.InfoContext(ctx, "quit plan updated", slog.String("user_id", userID.String()))

	return withSavings(updated), nil
}

// UpdateQuitDate moves the caller's quit date.
func (s *Service) UpdateQuitDate(ctx context.Context, quitDate time.Time) (*PlanResult, error) {
	return s.Update(ctx, UpdateInput{QuitDate: &quitDate})
}

func withSavings(p *domain.QuitPlan) *PlanResult {
	return &PlanResult{Plan: p, Savings: statistics.ProjectSavings(p.Habits())}
}

func applyUpdate(p domain.QuitPlan, in UpdateInput) domain.QuitPlan {
	if in.QuitDate != nil {
		p.QuitDate = in.QuitDate.UTC()
	}
	if in.CigarettesPerDay != nil {
		p.CigarettesPerDay = *in.CigarettesPerDay
	}
	if in.CostPerPack != nil {
		p.CostPerPack = *in.CostPerPack
	}
	if in.CigarettesPerPack != nil {
		p.CigarettesPerPack = *in.CigarettesPerPack
	}
	if in.Motivations != nil {
		p.Motivations = in.Motivations
	}
	return p
}

// diffPlans returns the audit changes between two versions of a plan.
func diffPlans(old, new domain.QuitPlan) map[string]any {
	changes := make(map[string]any)

	if !old.QuitDate.Equal(new.QuitDate) {
		changes["quit_date"] = domain.FieldChange(old.QuitDate.Format(time.RFC3339), new.QuitDate.Format(time.RFC3339))
	}
	if old.CigarettesPerDay != new.CigarettesPerDay {
		changes["cigarettes_per_day"] = domain.FieldChange(old.CigarettesPerDay, new.CigarettesPerDay)
	}
	if old.CostPerPack != new.CostPerPack {
		changes["cost_per_pack"] = domain.FieldChange(old.CostPerPack, new.CostPerPack)
	}
	if old.CigarettesPerPack != new.CigarettesPerPack {
		changes["cigarettes_per_pack"] = domain.FieldChange(old.CigarettesPerPack, new.CigarettesPerPack)
	}
	if !slices.Equal(old.Motivations, new.Motivations) {
		changes["motivations"] = domain.FieldChange(old.Motivations, new.Motivations)
	}

	return changes
}
