// Package respond writes the JSON envelopes shared by REST handlers and
// HTTP middleware.
package respond

import (
	"encoding/json"
	"net/http"
	"time"
)

// Error codes returned in the error envelope.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeUserExists        = "USER_EXISTS"
	CodeQuitPlanNotFound  = "QUIT_PLAN_NOT_FOUND"
	CodeQuitPlanExists    = "QUIT_PLAN_EXISTS"
	CodeInvalidQuitDate   = "INVALID_QUIT_DATE"
	CodeMilestoneNotFound = "MILESTONE_NOT_FOUND"
	CodeCravingNotFound   = "CRAVING_NOT_FOUND"
	CodeRateLimited       = "RATE_LIMITED"
	CodeBadRequest        = "BAD_REQUEST"
	CodeInternal          = "INTERNAL_ERROR"
)

// Success is the envelope for 2xx responses.
type Success struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorBody is the payload of the error envelope.
type ErrorBody struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// ErrorEnvelope is the envelope for 4xx and 5xx responses.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// now is swapped in tests.
var now = time.Now

// JSON writes v as-is with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Data wraps data in the success envelope.
func Data(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Success{Success: true, Data: data})
}

// Message writes a success envelope carrying only a message.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Success{Success: true, Message: message})
}

// Error writes the error envelope.
func Error(w http.ResponseWriter, status int, code, message string, details map[string]any) {
	JSON(w, status, ErrorEnvelope{Error: ErrorBody{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: now().UTC(),
	}})
}
