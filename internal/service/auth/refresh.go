package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quitsmoke-backend/internal/auth"
	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/metrics"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Unknown, revoked or expired tokens yield ErrUnauthorized,
// as do tokens belonging to deactivated accounts.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (result *AuthResult, err error) {
	defer func() { metrics.AuthEvent("refresh", err) }()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if !token.Usable(s.clock.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}
	if !user.IsActive {
		s.log.WarnContext(ctx, "refresh for deactivated account",
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		revoked, err := s.tokens.RevokeByID(txCtx, token.ID)
		if err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		// A concurrent refresh with the same token got there first.
		if !revoked {
			return domain.ErrUnauthorized
		}

		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.log.WarnContext(ctx, "refresh token reuse attempted",
				slog.String("user_id", user.ID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
