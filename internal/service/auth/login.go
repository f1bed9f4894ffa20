package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/metrics"
)

// Login authenticates with email + password. Unknown emails, wrong passwords
// and deactivated accounts all yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (result *AuthResult, err error) {
	defer func() { metrics.AuthEvent("login", err) }()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !user.IsActive {
		s.log.WarnContext(ctx, "login to deactivated account",
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now().UTC()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("auth.Login touch last login: %w", err)
	}
	user.LastLoginAt = &now

	result, err = s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}
