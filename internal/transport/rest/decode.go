package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/transport/respond"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. On failure it writes a 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}

// pathUUID parses a chi URL parameter as a UUID. On failure it writes a 400
// and returns false.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, "Invalid input data",
			map[string]any{"fields": []fieldErrorResponse{{Field: name, Message: "must be a valid UUID"}}})
		return uuid.Nil, false
	}
	return id, true
}

// queryInt returns the integer query parameter name, or 0 when absent.
// On a malformed value it writes a 400 and returns false.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, "Invalid input data",
			map[string]any{"fields": []fieldErrorResponse{{Field: name, Message: "must be an integer"}}})
		return 0, false
	}
	return n, true
}
