package user

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

const (
	maxNameLen = 100
	maxURLLen  = 2048
)

// UpdateProfileInput holds parameters for profile update operation.
// Nil fields are left unchanged; an empty string clears the field.
type UpdateProfileInput struct {
	FirstName         *string
	LastName          *string
	ProfilePictureURL *string
}

func (i UpdateProfileInput) IsEmpty() bool {
	return i.FirstName == nil && i.LastName == nil && i.ProfilePictureURL == nil
}

func (i UpdateProfileInput) patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		FirstName:         trimmed(i.FirstName),
		LastName:          trimmed(i.LastName),
		ProfilePictureURL: trimmed(i.ProfilePictureURL),
	}
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.FirstName != nil && utf8.RuneCountInString(strings.TrimSpace(*i.FirstName)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "too long"})
	}
	if i.LastName != nil && utf8.RuneCountInString(strings.TrimSpace(*i.LastName)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "too long"})
	}
	if i.ProfilePictureURL != nil {
		if msg := checkURL(strings.TrimSpace(*i.ProfilePictureURL)); msg != "" {
			errs = append(errs, domain.FieldError{Field: "profilePictureUrl", Message: msg})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePreferencesInput holds parameters for preferences update operation.
// All fields are optional (nil = don't change).
type UpdatePreferencesInput struct {
	NotificationsEnabled *bool
	DailyCheckInTime     *string // "HH:MM", "" clears
	CravingAlertsEnabled *bool
	ChatbotTone          *domain.ChatbotTone
	Language             *string
	Theme                *domain.Theme
}

// Validate validates the update preferences input.
func (i UpdatePreferencesInput) Validate() error {
	var errs []domain.FieldError

	if i.DailyCheckInTime != nil && *i.DailyCheckInTime != "" {
		if len(*i.DailyCheckInTime) != 5 {
			errs = append(errs, domain.FieldError{Field: "dailyCheckInTime", Message: "must be HH:MM"})
		} else if _, err := time.Parse("15:04", *i.DailyCheckInTime); err != nil {
			errs = append(errs, domain.FieldError{Field: "dailyCheckInTime", Message: "must be HH:MM"})
		}
	}

	if i.ChatbotTone != nil && !i.ChatbotTone.IsValid() {
		errs = append(errs, domain.FieldError{Field: "aiChatbotTone", Message: "must be one of empathetic, motivational, direct"})
	}

	if i.Language != nil {
		if n := len(*i.Language); n < 2 || n > 10 {
			errs = append(errs, domain.FieldError{Field: "language", Message: "must be 2 to 10 characters"})
		}
	}

	if i.Theme != nil && !i.Theme.IsValid() {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "must be one of light, dark, auto"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkURL(raw string) string {
	if raw == "" {
		return ""
	}
	if len(raw) > maxURLLen {
		return "too long"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "must be an http or https URL"
	}
	return ""
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
