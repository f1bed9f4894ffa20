package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user together with their preferences.
// Deactivated accounts yield ErrUnauthorized.
func (s *Service) GetProfile(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	prefs, err := s.users.GetPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile preferences: %w", err)
	}

	return &domain.Profile{User: *user, Preferences: *prefs}, nil
}

// UpdateProfile updates the authenticated user's names and picture URL.
// An empty input returns the current user unchanged.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.IsEmpty() {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateProfile: %w", err)
		}
		return user, nil
	}

	user, err := s.users.UpdateProfile(ctx, userID, input.patch(), s.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))
	return user, nil
}

// DeleteAccount soft-deletes the authenticated user's account and revokes
// every refresh token they hold.
func (s *Service) DeleteAccount(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Deactivate(txCtx, userID, s.clock.Now().UTC()); err != nil {
			return fmt.Errorf("deactivate: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.AuditEntityUser,
			EntityID:   &userID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"is_active": domain.FieldChange(true, false)},
		})
	})
	if err != nil {
		return fmt.Errorf("user.DeleteAccount: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted", slog.String("user_id", userID.String()))
	return nil
}
