package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/respond"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth resolves a Bearer access token into a user ID on the request context.
// Requests without an Authorization header pass through anonymously; a
// present but invalid token is rejected with 401. Other validator failures
// are logged and answered with 500.
func Auth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(header)
			if !ok {
				unauthorized(w, "malformed authorization header")
				return
			}
			userID, err := validator.ValidateToken(r.Context(), token)
			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				unauthorized(w, "invalid or expired token")
				return
			case err != nil:
				logger.ErrorContext(r.Context(), "validate access token", slog.String("error", err.Error()))
				respond.Error(w, http.StatusInternalServerError, respond.CodeInternal, "internal server error", nil)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests that Auth left anonymous.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			unauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="quitsmoke"`)
	respond.Error(w, http.StatusUnauthorized, respond.CodeUnauthorized, message, nil)
}
