// Package ctxutil carries request-scoped identifiers through context.Context.
package ctxutil

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	requestKey
)

// request is shared by every context derived below WithRequestID, so an
// identity attached deep in the handler chain is visible to outer
// middleware once the handler returns.
type request struct {
	id string

	mu     sync.Mutex
	userID uuid.UUID
}

// WithRequestID starts request-scoped state carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestKey, &request{id: id})
}

// RequestIDFromCtx returns the request ID, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	if req, ok := ctx.Value(requestKey).(*request); ok {
		return req.id
	}
	return ""
}

// WithUserID stores the authenticated user ID in the context and records it
// on the enclosing request, if any.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if req, ok := ctx.Value(requestKey).(*request); ok {
		req.mu.Lock()
		req.userID = id
		req.mu.Unlock()
	}
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// LogAttrs returns request_id and user_id attributes for ctx, omitting the
// ones that are unknown. The user ID falls back to one recorded on the
// request by a nested handler.
func LogAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr

	req, _ := ctx.Value(requestKey).(*request)
	if req != nil && req.id != "" {
		attrs = append(attrs, slog.String("request_id", req.id))
	}

	userID, ok := UserIDFromCtx(ctx)
	if !ok && req != nil {
		req.mu.Lock()
		userID = req.userID
		req.mu.Unlock()
		ok = userID != uuid.Nil
	}
	if ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	return attrs
}
