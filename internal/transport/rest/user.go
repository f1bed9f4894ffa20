package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/user"
	"github.com/heartmarshall/quitsmoke-backend/internal/transport/respond"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	UpdatePreferences(ctx context.Context, input user.UpdatePreferencesInput) (*domain.Preferences, error)
	DeleteAccount(ctx context.Context) error
}

// UserHandler serves /api/users.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type profileResponse struct {
	userResponse
	Preferences preferencesResponse `json:"preferences"`
}

type updateProfileRequest struct {
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

type updatePreferencesRequest struct {
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	DailyCheckInTime     *string `json:"dailyCheckInTime"`
	CravingAlertsEnabled *bool   `json:"cravingAlertsEnabled"`
	ChatbotTone          *string `json:"aiChatbotTone"`
	Language             *string `json:"language"`
	Theme                *string `json:"theme"`
}

// GetProfile handles GET /api/users/profile.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, errorCodes{})
		return
	}

	respond.Data(w, http.StatusOK, profileResponse{
		userResponse: toUserResponse(&p.User),
		Preferences:  toPreferencesResponse(&p.Preferences),
	})
}

// UpdateProfile handles PUT /api/users/profile.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err, errorCodes{})
		return
	}

	respond.Data(w, http.StatusOK, map[string]any{"profile": toUserResponse(u)})
}

// UpdatePreferences handles PUT /api/users/preferences.
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req updatePreferencesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := user.UpdatePreferencesInput{
		NotificationsEnabled: req.NotificationsEnabled,
		DailyCheckInTime:     req.DailyCheckInTime,
		CravingAlertsEnabled: req.CravingAlertsEnabled,
		Language:             req.Language,
	}
	if req.ChatbotTone != nil {
		tone := domain.ChatbotTone(*req.ChatbotTone)
		input.ChatbotTone = &tone
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		input.Theme = &theme
	}

	prefs, err := h.svc.UpdatePreferences(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err, errorCodes{})
		return
	}

	respond.Data(w, http.StatusOK, map[string]any{"preferences": toPreferencesResponse(prefs)})
}

// DeleteAccount handles DELETE /api/users/account.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAccount(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err, errorCodes{})
		return
	}
	respond.Message(w, http.StatusOK, "Account deleted successfully")
}
