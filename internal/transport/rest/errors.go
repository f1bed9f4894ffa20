package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/respond"
)

// errorCodes overrides the generic codes for a resource.
type errorCodes struct {
	notFound string
	conflict string
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeServiceError maps a service error onto the error envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, codes errorCodes) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		fields := domain.FieldErrorsOf(err)
		out := make([]fieldErrorResponse, len(fields))
		for i, f := range fields {
			out[i] = fieldErrorResponse{Field: f.Field, Message: f.Message}
		}
		respond.Error(w, http.StatusBadRequest, respond.CodeValidation, "Invalid input data",
			map[string]any{"fields": out})
	case errors.Is(err, domain.ErrInvalidQuitDate):
		respond.Error(w, http.StatusBadRequest, respond.CodeInvalidQuitDate,
			"Quit date is outside the allowed window", nil)
	case errors.Is(err, domain.ErrUnauthorized):
		respond.Error(w, http.StatusUnauthorized, respond.CodeUnauthorized, "Unauthorized", nil)
	case errors.Is(err, domain.ErrForbidden):
		respond.Error(w, http.StatusForbidden, respond.CodeForbidden, "Forbidden", nil)
	case errors.Is(err, domain.ErrNotFound):
		respond.Error(w, http.StatusNotFound, orDefault(codes.notFound, respond.CodeNotFound), "Not found", nil)
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		respond.Error(w, http.StatusConflict, orDefault(codes.conflict, respond.CodeConflict), "Already exists", nil)
	case errors.Is(err, context.Canceled):
		log.DebugContext(r.Context(), "request canceled", slog.String("path", r.URL.Path))
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		respond.Error(w, http.StatusInternalServerError, respond.CodeInternal, "Internal server error", nil)
	}
}

func orDefault(code, def string) string {
	if code == "" {
		return def
	}
	return code
}
