package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres/audit"
	cravingrepo "github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres/craving"
	milestonerepo "github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres/milestone"
	quitplanrepo "github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres/quitplan"
	"github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres/unlock"
	userrepo "github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/quitsmoke-backend/internal/auth"
	"github.com/heartmarshall/quitsmoke-backend/internal/config"
	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/metrics"
	authsvc "github.com/heartmarshall/quitsmoke-backend/internal/service/auth"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/craving"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/milestone"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/quitplan"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/statistics"
	usersvc "github.com/heartmarshall/quitsmoke-backend/internal/service/user"
)

// container holds the repositories and services shared by serve, seed and
// cleanup-tokens.
type container struct {
	users    *userrepo.Repo
	plans    *quitplanrepo.Repo
	cravings *cravingrepo.Repo

	tokens *authpkg.TokenManager

	auth       *authsvc.Service
	user       *usersvc.Service
	quitPlan   *quitplan.Service
	craving    *craving.Service
	statistics *statistics.Service
	milestone  *milestone.Service
}

func newContainer(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) *container {
	txm := postgres.NewTxManager(pool)

	auditRepo := audit.New(pool)
	tokenRepo := token.New(pool)
	c := &container{
		users:    userrepo.New(pool),
		plans:    quitplanrepo.New(pool),
		cravings: cravingrepo.New(pool),
		tokens:   authpkg.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock),
	}

	c.auth = authsvc.NewService(logger, c.users, tokenRepo, auditRepo, txm, c.tokens, clock, cfg.Auth)
	c.user = usersvc.NewService(logger, c.users, tokenRepo, auditRepo, txm, clock)
	c.quitPlan = quitplan.NewService(logger, c.plans, auditRepo, txm, clock, quitplan.QuitDateWindow{
		Grace:    cfg.Progress.QuitDateGrace,
		MaxAhead: cfg.Progress.QuitDateMaxAhead,
	})
	c.craving = craving.NewService(logger, c.cravings, clock)
	c.statistics = statistics.NewService(logger, c.plans, clock, cfg.Progress.MinutesPerCigarette)
	c.milestone = milestone.NewService(logger, c.plans, c.cravings, milestonerepo.New(pool), unlock.New(pool), clock,
		func(def domain.MilestoneDefinition) { metrics.MilestoneUnlocked(def.Category.String()) },
	)

	return c
}
