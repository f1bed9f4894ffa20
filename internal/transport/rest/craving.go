package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/craving"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/respond"
)

type cravingService interface {
	Create(ctx context.Context, input craving.CreateInput) (*domain.Craving, error)
	List(ctx context.Context, limit, offset int) ([]domain.Craving, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Craving, error)
	Update(ctx context.Context, id uuid.UUID, input craving.UpdateInput) (*domain.Craving, error)
	Analytics(ctx context.Context, days int) (*domain.CravingAnalytics, error)
	Triggers(ctx context.Context) ([]domain.TriggerCount, error)
}

// CravingHandler serves /api/cravings.
type CravingHandler struct {
	svc cravingService
	log *slog.Logger
}

// NewCravingHandler creates a CravingHandler.
func NewCravingHandler(svc cravingService, logger *slog.Logger) *CravingHandler {
	return &CravingHandler{svc: svc, log: logger.With("handler", "craving")}
}

var cravingCodes = errorCodes{notFound: respond.CodeCravingNotFound}

type createCravingRequest struct {
	Intensity            int      `json:"intensity"`
	Triggers             []string `json:"triggers"`
	ReliefTechniquesUsed []string `json:"reliefTechniquesUsed"`
	Notes                *string  `json:"notes"`
}

type updateCravingRequest struct {
	Resolved             *bool    `json:"resolved"`
	Duration             *int     `json:"duration"`
	ReliefTechniquesUsed []string `json:"reliefTechniquesUsed"`
}

// Create handles POST /api/cravings.
func (h *CravingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCravingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), craving.CreateInput{
		Intensity:            req.Intensity,
		Triggers:             req.Triggers,
		ReliefTechniquesUsed: req.ReliefTechniquesUsed,
		Notes:                req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err, cravingCodes)
		return
	}
	respond.Data(w, http.StatusCreated, toCravingResponse(c))
}

// List handles GET /api/cravings?limit=&offset=.
func (h *CravingHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	list, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, h.log, err, cravingCodes)
		return
	}

	out := make([]cravingResponse, len(list))
	for i := range list {
		out[i] = toCravingResponse(&list[i])
	}
	respond.Data(w, http.StatusOK, out)
}

// Get handles GET /api/cravings/{id}.
func (h *CravingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err, cravingCodes)
		return
	}
	respond.Data(w, http.StatusOK, toCravingResponse(c))
}

// Update handles PUT /api/cravings/{id}.
func (h *CravingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateCravingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Update(r.Context(), id, craving.UpdateInput{
		Resolved:             req.Resolved,
		Duration:             req.Duration,
		ReliefTechniquesUsed: req.ReliefTechniquesUsed,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err, cravingCodes)
		return
	}
	respond.Data(w, http.StatusOK, toCravingResponse(c))
}

// Analytics handles GET /api/cravings/analytics?days=.
func (h *CravingHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	days, ok := queryInt(w, r, "days")
	if !ok {
		return
	}

	a, err := h.svc.Analytics(r.Context(), days)
	if err != nil {
		writeServiceError(w, r, h.log, err, cravingCodes)
		return
	}
	respond.Data(w, http.StatusOK, toAnalyticsResponse(a))
}

// Triggers handles GET /api/cravings/triggers.
func (h *CravingHandler) Triggers(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Triggers(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, cravingCodes)
		return
	}
	respond.Data(w, http.StatusOK, toTriggerCounts(counts))
}
