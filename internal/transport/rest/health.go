package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quitsmoke-backend/internal/transport/respond"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	version string
	clock   clockwork.Clock
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, clock clockwork.Clock) *HealthHandler {
	return &HealthHandler{db: db, version: version, clock: clock}
}

// HealthResponse is the body of all probe endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of a single dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now().UTC()})
}

// Ready answers 503 when the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status, body := http.StatusOK, "ok"
	if err := h.db.Ping(ctx); err != nil {
		status, body = http.StatusServiceUnavailable, "down"
	}
	respond.JSON(w, status, HealthResponse{Status: body, Timestamp: h.clock.Now().UTC()})
}

// Health reports per-component status with the database ping latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus, 1),
	}

	start := h.clock.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "down"
		resp.Components["database"] = CompStatus{Status: "down"}
	} else {
		resp.Components["database"] = CompStatus{Status: "ok", Latency: h.clock.Since(start).String()}
	}
	resp.Timestamp = h.clock.Now().UTC()

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	respond.JSON(w, status, resp)
}
