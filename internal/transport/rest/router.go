package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/config"
	"github.com/heartmarshall/quitsmoke-backend/internal/metrics"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/middleware"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/respond"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handlers groups the resource handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	User     *UserHandler
	QuitPlan *QuitPlanHandler
	Craving  *CravingHandler
	Progress *ProgressHandler
}

// RouterConfig holds the settings the router reads.
type RouterConfig struct {
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Metrics   config.MetricsConfig
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(
	h Handlers,
	tokens tokenValidator,
	limiter *middleware.RateLimiter,
	cfg RouterConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Metrics,
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens, logger),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusNotFound, respond.CodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, respond.CodeBadRequest, "Method not allowed", nil)
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(limiter.Limit(cfg.RateLimit.AuthPerMinute))
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.With(middleware.RequireUser).Post("/logout", h.Auth.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", h.User.GetProfile)
				r.Put("/profile", h.User.UpdateProfile)
				r.Put("/preferences", h.User.UpdatePreferences)
				r.Delete("/account", h.User.DeleteAccount)
			})

			r.Route("/quit-plan", func(r chi.Router) {
				r.Post("/", h.QuitPlan.Create)
				r.Get("/", h.QuitPlan.Get)
				r.Put("/", h.QuitPlan.Update)
				r.Put("/quit-date", h.QuitPlan.UpdateQuitDate)
			})

			r.Route("/cravings", func(r chi.Router) {
				r.Post("/", h.Craving.Create)
				r.Get("/", h.Craving.List)
				r.Get("/analytics", h.Craving.Analytics)
				r.Get("/triggers", h.Craving.Triggers)
				r.Get("/{id}", h.Craving.Get)
				r.Put("/{id}", h.Craving.Update)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Get("/stats", h.Progress.Stats)
				r.Get("/timer", h.Progress.Timer)
				r.Get("/milestones", h.Progress.Milestones)
				r.Get("/milestones/unlocked", h.Progress.Unlocked)
				r.Get("/milestone/{id}", h.Progress.Unlock)
				r.Post("/milestone/{id}/share", h.Progress.Share)
				r.Get("/streak", h.Progress.Streak)
			})
		})
	})

	return r
}
