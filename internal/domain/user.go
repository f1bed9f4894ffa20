package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      string
	FirstName         *string
	LastName          *string
	ProfilePictureURL *string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastLoginAt       *time.Time
}

// DisplayName returns "First Last" when either part is set, otherwise the email.
func (u *User) DisplayName() string {
	var parts []string
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	if len(parts) == 0 {
		return u.Email
	}
	return strings.Join(parts, " ")
}

// ProfilePatch lists profile fields to change. Nil fields are left as is;
// an empty string clears the field.
type ProfilePatch struct {
	FirstName         *string
	LastName          *string
	ProfilePictureURL *string
}

// Preferences holds per-user notification and display settings.
type Preferences struct {
	UserID               uuid.UUID
	NotificationsEnabled bool
	DailyCheckInTime     *string // "HH:MM"
	CravingAlertsEnabled bool
	ChatbotTone          ChatbotTone
	Language             string
	Theme                Theme
	UpdatedAt            time.Time
}

// DefaultPreferences returns Preferences with the values new accounts start with.
func DefaultPreferences(userID uuid.UUID) Preferences {
	return Preferences{
		UserID:               userID,
		NotificationsEnabled: true,
		CravingAlertsEnabled: true,
		ChatbotTone:          ChatbotToneEmpathetic,
		Language:             "en",
		Theme:                ThemeAuto,
	}
}

// Profile is a user together with their preferences.
type Profile struct {
	User        User
	Preferences Preferences
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// Usable reports whether the token can still be exchanged at now: it is
// not revoked and ExpiresAt has not passed. A token expiring exactly at
// now is still usable.
func (t *RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && !now.After(t.ExpiresAt)
}
