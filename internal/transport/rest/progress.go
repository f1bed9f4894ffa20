package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/respond"
)

type statisticsService interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
	GetSmokeFreeTimer(ctx context.Context) (*domain.SmokeFreeDuration, error)
}

type milestoneService interface {
	RefreshProgress(ctx context.Context) ([]domain.MilestoneProgress, error)
	ListUnlocked(ctx context.Context) ([]domain.UnlockRecord, error)
	ShareMilestone(ctx context.Context, milestoneID uuid.UUID) (bool, error)
	GetBestStreak(ctx context.Context) (int64, error)
	GetUnlock(ctx context.Context, milestoneID uuid.UUID) (*domain.UnlockRecord, error)
}

// ProgressHandler serves /api/progress: statistics and milestones.
type ProgressHandler struct {
	stats      statisticsService
	milestones milestoneService
	clock      clockwork.Clock
	log        *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(stats statisticsService, milestones milestoneService, clock clockwork.Clock, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{
		stats:      stats,
		milestones: milestones,
		clock:      clock,
		log:        logger.With("handler", "progress"),
	}
}

var progressCodes = errorCodes{notFound: respond.CodeMilestoneNotFound}

func writeNoQuitPlan(w http.ResponseWriter) {
	respond.Error(w, http.StatusNotFound, respond.CodeQuitPlanNotFound,
		"No quit plan found. Please create a quit plan first.", nil)
}

// Stats handles GET /api/progress/stats.
func (h *ProgressHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetStatistics(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, progressCodes)
		return
	}
	if stats == nil {
		writeNoQuitPlan(w)
		return
	}
	respond.Data(w, http.StatusOK, toStatisticsResponse(stats))
}

// Timer handles GET /api/progress/timer.
func (h *ProgressHandler) Timer(w http.ResponseWriter, r *http.Request) {
	d, err := h.stats.GetSmokeFreeTimer(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, progressCodes)
		return
	}
	if d == nil {
		writeNoQuitPlan(w)
		return
	}
	respond.Data(w, http.StatusOK, map[string]any{
		"smokeFreeTime": toSmokeFreeTime(*d),
		"timestamp":     h.clock.Now().UTC(),
	})
}

// Milestones handles GET /api/progress/milestones. Reaching a threshold
// unlocks the milestone as a side effect of reading progress.
func (h *ProgressHandler) Milestones(w http.ResponseWriter, r *http.Request) {
	progress, err := h.milestones.RefreshProgress(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, progressCodes)
		return
	}
	respond.Data(w, http.StatusOK, toProgressResponse(progress))
}

// Unlocked handles GET /api/progress/milestones/unlocked.
func (h *ProgressHandler) Unlocked(w http.ResponseWriter, r *http.Request) {
	unlocks, err := h.milestones.ListUnlocked(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, progressCodes)
		return
	}
	respond.Data(w, http.StatusOK, toUnlockResponses(unlocks))
}

// Unlock handles GET /api/progress/milestone/{id}.
func (h *ProgressHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.milestones.GetUnlock(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err, progressCodes)
		return
	}
	respond.Data(w, http.StatusOK, toUnlockResponses([]domain.UnlockRecord{*rec})[0])
}

// Share handles POST /api/progress/milestone/{id}/share.
func (h *ProgressHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	shared, err := h.milestones.ShareMilestone(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err, progressCodes)
		return
	}
	if !shared {
		respond.Error(w, http.StatusNotFound, respond.CodeMilestoneNotFound,
			"Milestone not found or not unlocked", nil)
		return
	}
	respond.Message(w, http.StatusOK, "Milestone marked as shared")
}

// Streak handles GET /api/progress/streak.
func (h *ProgressHandler) Streak(w http.ResponseWriter, r *http.Request) {
	best, err := h.milestones.GetBestStreak(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, progressCodes)
		return
	}
	respond.Data(w, http.StatusOK, map[string]int64{"bestStreak": best})
}
