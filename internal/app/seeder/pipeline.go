package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/auth"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"user", "plan", "cravings", "milestones"}

var (
	demoTriggers   = []string{"stress", "coffee", "after meals", "alcohol", "boredom", "social"}
	demoTechniques = []string{"deep breathing", "walk", "water", "chewing gum"}
)

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline seeds demo data phase by phase. Every phase is idempotent: data
// that already exists is counted as skipped.
type Pipeline struct {
	log     *slog.Logger
	deps    Deps
	cfg     Config
	clock   clockwork.Clock
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, deps Deps, cfg Config, clock clockwork.Clock) *Pipeline {
	return &Pipeline{
		log:     log,
		deps:    deps,
		cfg:     cfg,
		clock:   clock,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. A failed phase does not stop later ones.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		toRun = nil
		for _, ph := range allPhases {
			if filter[ph] {
				toRun = append(toRun, ph)
				delete(filter, ph)
			}
		}
		if len(filter) > 0 {
			return fmt.Errorf("unknown phases: %v", slices.Sorted(maps.Keys(filter)))
		}
	}

	for _, phase := range toRun {
		start := p.clock.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "user":
			result = p.runUser(ctx)
		case "plan":
			result = p.runPlan(ctx)
		case "cravings":
			result = p.runCravings(ctx)
		case "milestones":
			result = p.runMilestones(ctx)
		}
		result.Duration = p.clock.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// demoUser returns the demo account, or nil when it does not exist yet.
func (p *Pipeline) demoUser(ctx context.Context) (*domain.User, error) {
	u, err := p.deps.Users.GetByEmail(ctx, p.cfg.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup demo user: %w", err)
	}
	return u, nil
}

// requireUser is demoUser for phases that cannot run without the account.
func (p *Pipeline) requireUser(ctx context.Context) (uuid.UUID, error) {
	u, err := p.demoUser(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if u == nil {
		if p.cfg.DryRun {
			return uuid.Nil, nil
		}
		return uuid.Nil, fmt.Errorf("demo user %s does not exist; run the user phase first", p.cfg.Email)
	}
	return u.ID, nil
}

func (p *Pipeline) runUser(ctx context.Context) PhaseResult {
	u, err := p.demoUser(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}
	if u != nil || p.cfg.DryRun {
		return PhaseResult{Skipped: 1}
	}

	first := p.cfg.FirstName
	_, err = p.deps.Registrar.Register(ctx, auth.RegisterInput{
		Email:     p.cfg.Email,
		Password:  p.cfg.Password,
		FirstName: &first,
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("register demo user: %w", err)}
	}
	return PhaseResult{Inserted: 1}
}

func (p *Pipeline) runPlan(ctx context.Context) PhaseResult {
	userID, err := p.requireUser(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: 1}
	}

	_, err = p.deps.Plans.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		return PhaseResult{Skipped: 1}
	case !errors.Is(err, domain.ErrNotFound):
		return PhaseResult{Err: fmt.Errorf("lookup plan: %w", err)}
	}

	now := p.clock.Now().UTC()
	_, err = p.deps.Plans.Create(ctx, &domain.QuitPlan{
		ID:                uuid.New(),
		UserID:            userID,
		QuitDate:          p.quitDate(),
		CigarettesPerDay:  p.cfg.CigarettesPerDay,
		CostPerPack:       p.cfg.CostPerPack,
		CigarettesPerPack: domain.DefaultCigarettesPerPack,
		Motivations:       []string{"health", "family", "save money"},
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("create plan: %w", err)}
	}
	return PhaseResult{Inserted: 1}
}

func (p *Pipeline) runCravings(ctx context.Context) PhaseResult {
	userID, err := p.requireUser(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: p.cfg.Cravings}
	}

	existing, err := p.deps.Cravings.List(ctx, userID, 1, 0)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list cravings: %w", err)}
	}
	if len(existing) > 0 {
		return PhaseResult{Skipped: p.cfg.Cravings}
	}

	var result PhaseResult
	for _, c := range demoCravings(userID, p.quitDate(), p.clock.Now().UTC(), p.cfg.Cravings) {
		if _, err := p.deps.Cravings.Create(ctx, &c); err != nil {
			result.Err = fmt.Errorf("create craving: %w", err)
			return result
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runMilestones(ctx context.Context) PhaseResult {
	userID, err := p.requireUser(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}
	if p.cfg.DryRun {
		return PhaseResult{}
	}

	unlocked, err := p.deps.Unlocker.CheckAndUnlockMilestones(ctxutil.WithUserID(ctx, userID))
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("unlock milestones: %w", err)}
	}
	return PhaseResult{Inserted: len(unlocked)}
}

func (p *Pipeline) quitDate() time.Time {
	return p.clock.Now().UTC().Add(-time.Duration(p.cfg.QuitDaysAgo) * 24 * time.Hour).Truncate(time.Hour)
}

// demoCravings spreads n cravings evenly between quitDate and now. Every
// fourth craving is left unresolved.
func demoCravings(userID uuid.UUID, quitDate, now time.Time, n int) []domain.Craving {
	if n <= 0 || !now.After(quitDate) {
		return nil
	}
	step := now.Sub(quitDate) / time.Duration(n+1)

	out := make([]domain.Craving, n)
	for i := range out {
		triggers := []string{demoTriggers[i%len(demoTriggers)]}
		if i%3 == 0 {
			triggers = append(triggers, demoTriggers[(i+2)%len(demoTriggers)])
		}
		c := domain.Craving{
			ID:        uuid.New(),
			UserID:    userID,
			Intensity: 3 + (i*7)%8,
			Triggers:  triggers,
			Resolved:  i%4 != 3,
			CreatedAt: quitDate.Add(step * time.Duration(i+1)),
		}
		if c.Resolved {
			d := 120 + 60*(i%10)
			c.Duration = &d
			c.ReliefTechniquesUsed = []string{demoTechniques[i%len(demoTechniques)]}
		}
		out[i] = c
	}
	return out
}
