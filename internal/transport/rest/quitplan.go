package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/quitplan"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/respond"
)

type quitPlanService interface {
	Create(ctx context.Context, input quitplan.CreateInput) (*quitplan.PlanResult, error)
	Get(ctx context.Context) (*quitplan.PlanResult, error)
	Update(ctx context.Context, input quitplan.UpdateInput) (*quitplan.PlanResult, error)
	UpdateQuitDate(ctx context.Context, quitDate time.Time) (*quitplan.PlanResult, error)
}

// QuitPlanHandler serves /api/quit-plan.
type QuitPlanHandler struct {
	svc quitPlanService
	log *slog.Logger
}

// NewQuitPlanHandler creates a QuitPlanHandler.
func NewQuitPlanHandler(svc quitPlanService, logger *slog.Logger) *QuitPlanHandler {
	return &QuitPlanHandler{svc: svc, log: logger.With("handler", "quit_plan")}
}

var quitPlanCodes = errorCodes{conflict: respond.CodeQuitPlanExists}

type createQuitPlanRequest struct {
	QuitDate          string   `json:"quitDate"`
	CigarettesPerDay  int      `json:"cigarettesPerDay"`
	CostPerPack       float64  `json:"costPerPack"`
	CigarettesPerPack int      `json:"cigarettesPerPack"`
	Motivations       []string `json:"motivations"`
}

type updateQuitPlanRequest struct {
	QuitDate          *string  `json:"quitDate"`
	CigarettesPerDay  *int     `json:"cigarettesPerDay"`
	CostPerPack       *float64 `json:"costPerPack"`
	CigarettesPerPack *int     `json:"cigarettesPerPack"`
	Motivations       []string `json:"motivations"`
}

type updateQuitDateRequest struct {
	QuitDate string `json:"quitDate"`
}

// parseQuitDate accepts an RFC 3339 timestamp. An empty string yields the
// zero time, which the service reports as missing.
func parseQuitDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError("quitDate", "must be an RFC 3339 date-time")
	}
	return t.UTC(), nil
}

// Create handles POST /api/quit-plan.
func (h *QuitPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuitPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	quitDate, err := parseQuitDate(req.QuitDate)
	if err != nil {
		writeServiceError(w, r, h.log, err, quitPlanCodes)
		return
	}

	res, err := h.svc.Create(r.Context(), quitplan.CreateInput{
		QuitDate:          quitDate,
		CigarettesPerDay:  req.CigarettesPerDay,
		CostPerPack:       req.CostPerPack,
		CigarettesPerPack: req.CigarettesPerPack,
		Motivations:       req.Motivations,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err, quitPlanCodes)
		return
	}

	respond.Data(w, http.StatusCreated, toPlanResultResponse(res))
}

// Get handles GET /api/quit-plan.
func (h *QuitPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, quitPlanCodes)
		return
	}
	respond.Data(w, http.StatusOK, toPlanResultResponse(res))
}

// Update handles PUT /api/quit-plan.
func (h *QuitPlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateQuitPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := quitplan.UpdateInput{
		CigarettesPerDay:  req.CigarettesPerDay,
		CostPerPack:       req.CostPerPack,
		CigarettesPerPack: req.CigarettesPerPack,
		Motivations:       req.Motivations,
	}
	if req.QuitDate != nil {
		quitDate, err := parseQuitDate(*req.QuitDate)
		if err != nil {
			writeServiceError(w, r, h.log, err, quitPlanCodes)
			return
		}
		input.QuitDate = &quitDate
	}

	res, err := h.svc.Update(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err, quitPlanCodes)
		return
	}
	respond.Data(w, http.StatusOK, toPlanResultResponse(res))
}

// UpdateQuitDate handles PUT /api/quit-plan/quit-date.
func (h *QuitPlanHandler) UpdateQuitDate(w http.ResponseWriter, r *http.Request) {
	var req updateQuitDateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	quitDate, err := parseQuitDate(req.QuitDate)
	if err == nil && quitDate.IsZero() {
		err = domain.NewValidationError("quitDate", "required")
	}
	if err != nil {
		writeServiceError(w, r, h.log, err, quitPlanCodes)
		return
	}

	res, err := h.svc.UpdateQuitDate(r.Context(), quitDate)
	if err != nil {
		writeServiceError(w, r, h.log, err, quitPlanCodes)
		return
	}
	respond.Data(w, http.StatusOK, toPlanResultResponse(res))
}
