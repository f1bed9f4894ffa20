package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/metrics"
)

// Register creates a new account with default preferences and signs it in.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (result *AuthResult, err error) {
	defer func() { metrics.AuthEvent("register", err) }()

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	var created *domain.User

	// Email uniqueness is enforced by a DB constraint.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock.Now().UTC()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: string(hash),
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		prefs := domain.DefaultPreferences(user.ID)
		prefs.UpdatedAt = now
		if err := s.users.CreatePreferences(txCtx, &prefs); err != nil {
			return fmt.Errorf("create preferences: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     user.ID,
			EntityType: domain.AuditEntityUser,
			EntityID:   &user.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"email": domain.FieldChange(nil, user.Email)},
		}); err != nil {
			return fmt.Errorf("audit: %w", err)
		}

		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err = s.issueTokens(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", created.ID.String()))
	return result, nil
}
