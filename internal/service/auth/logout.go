package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/metrics"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

// Logout revokes every refresh token of the caller. Access tokens already
// issued stay valid until they expire.
func (s *Service) Logout(ctx context.Context) (err error) {
	defer func() { metrics.AuthEvent("logout", err) }()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "refresh tokens revoked", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken resolves an access token to the ID of an active user.
// Tokens of deleted (deactivated) accounts are rejected even before expiry.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return uuid.Nil, domain.ErrUnauthorized
	case err != nil:
		return uuid.Nil, fmt.Errorf("auth.ValidateToken: %w", err)
	case !user.IsActive:
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// CleanupExpiredTokens deletes expired and revoked refresh tokens and
// returns how many were removed.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	n, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	metrics.TokensPurged.Add(float64(n))
	s.log.InfoContext(ctx, "refresh tokens purged", slog.Int("count", n))
	return n, nil
}
