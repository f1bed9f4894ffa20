package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/quitsmoke-backend/internal/config"
	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/middleware"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/respond"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

var (
	refNow     = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	testUserID = uuid.MustParse("8f0e4a52-3c1d-4c53-9d0e-1f6b7a2c9e11")
)

const testToken = "valid-access-token"

func ptr[T any](v T) *T { return &v }

type services struct {
	auth       *authServiceMock
	user       *userServiceMock
	plan       *quitPlanServiceMock
	craving    *cravingServiceMock
	stats      *statisticsServiceMock
	milestones *milestoneServiceMock
	tokens     *tokenValidatorMock
}

// newServices returns empty service mocks and a validator that accepts testToken.
func newServices() *services {
	return &services{
		auth:       &authServiceMock{},
		user:       &userServiceMock{},
		plan:       &quitPlanServiceMock{},
		craving:    &cravingServiceMock{},
		stats:      &statisticsServiceMock{},
		milestones: &milestoneServiceMock{},
		tokens: &tokenValidatorMock{
			ValidateTokenFunc: func(_ context.Context, token string) (uuid.UUID, error) {
				if token == testToken {
					return testUserID, nil
				}
				return uuid.Nil, domain.ErrUnauthorized
			},
		},
	}
}

func defaultRouterConfig() RouterConfig {
	return RouterConfig{
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000, CleanupInterval: time.Minute},
	}
}

func (s *services) router(t *testing.T) http.Handler {
	t.Helper()
	return s.routerWith(t, defaultRouterConfig())
}

func (s *services) routerWith(t *testing.T, cfg RouterConfig) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := clockwork.NewFakeClockAt(refNow)
	limiter := middleware.NewRateLimiter(clock, cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	h := Handlers{
		Health:   NewHealthHandler(&dbPingerMock{}, "test", clock),
		Auth:     NewAuthHandler(s.auth, logger),
		User:     NewUserHandler(s.user, logger),
		QuitPlan: NewQuitPlanHandler(s.plan, logger),
		Craving:  NewCravingHandler(s.craving, logger),
		Progress: NewProgressHandler(s.stats, s.milestones, clock, logger),
	}
	return NewRouter(h, s.tokens, limiter, cfg, logger)
}

// do sends a request through h. A non-empty body is sent as JSON.
func do(t *testing.T, h http.Handler, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.True(t, env.Success, rec.Body.String())
	return env.Data
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeEnvelope[json.RawMessage](t, rec).Message
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) respond.ErrorBody {
	t.Helper()
	var env respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env.Error
}

// fieldNames extracts the field names from a validation error body.
func fieldNames(t *testing.T, body respond.ErrorBody) []string {
	t.Helper()
	raw, ok := body.Details["fields"].([]any)
	require.True(t, ok, "details.fields missing: %v", body.Details)
	names := make([]string, 0, len(raw))
	for _, f := range raw {
		names = append(names, f.(map[string]any)["field"].(string))
	}
	return names
}

func requireUser(t *testing.T, ctx context.Context) {
	t.Helper()
	id, ok := ctxutil.UserIDFromCtx(ctx)
	require.True(t, ok)
	require.Equal(t, testUserID, id)
}
