// Package user implements the User and Preferences repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/quitsmoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

// Repo provides user and preferences persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, profile_picture_url,
	is_active, created_at, updated_at, last_login_at`

const preferencesColumns = `user_id, notifications_enabled, daily_check_in_time,
	craving_alerts_enabled, ai_chatbot_tone, language, theme, updated_at`

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key, active or not.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return row.toDomain(), nil
}

// Create inserts a new user and returns the persisted row.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, TRUE, $6, $6)
		 RETURNING `+userColumns,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return row.toDomain(), nil
}

// UpdateProfile applies patch to the user and returns the updated row.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch, now time.Time) (*domain.User, error) {
	qb := postgres.Builder().
		Update("users").
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	if patch.FirstName != nil {
		qb = qb.Set("first_name", nullIfEmpty(*patch.FirstName))
	}
	if patch.LastName != nil {
		qb = qb.Set("last_name", nullIfEmpty(*patch.LastName))
	}
	if patch.ProfilePictureURL != nil {
		qb = qb.Set("profile_picture_url", nullIfEmpty(*patch.ProfilePictureURL))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update profile query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// TouchLastLogin records a successful login.
func (r *Repo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	return nil
}

// Deactivate soft-deletes an account. Returns domain.ErrNotFound when the
// user does not exist or is already inactive.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE users SET is_active = FALSE, updated_at = $2 WHERE id = $1 AND is_active`, id, at)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Preferences operations
// ---------------------------------------------------------------------------

// GetPreferences returns the preferences for the given user.
func (r *Repo) GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	var row preferencesRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+preferencesColumns+` FROM user_preferences WHERE user_id = $1`, userID)
	if err != nil {
		return nil, postgres.MapError(err, "user_preferences", userID)
	}
	return row.toDomain(), nil
}

// CreatePreferences inserts the preferences row for a new user.
func (r *Repo) CreatePreferences(ctx context.Context, p *domain.Preferences) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO user_preferences (`+preferencesColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.UserID, p.NotificationsEnabled, p.DailyCheckInTime, p.CravingAlertsEnabled,
		string(p.ChatbotTone), p.Language, string(p.Theme), p.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "user_preferences", p.UserID)
	}
	return nil
}

// UpdatePreferences overwrites every preference column with p.
func (r *Repo) UpdatePreferences(ctx context.Context, p *domain.Preferences) (*domain.Preferences, error) {
	var checkIn *string
	if p.DailyCheckInTime != nil {
		checkIn = nullIfEmpty(*p.DailyCheckInTime)
	}

	var row preferencesRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`UPDATE user_preferences SET
		     notifications_enabled = $2,
		     daily_check_in_time = $3,
		     craving_alerts_enabled = $4,
		     ai_chatbot_tone = $5,
		     language = $6,
		     theme = $7,
		     updated_at = $8
		 WHERE user_id = $1
		 RETURNING `+preferencesColumns,
		p.UserID, p.NotificationsEnabled, checkIn, p.CravingAlertsEnabled,
		string(p.ChatbotTone), p.Language, string(p.Theme), p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_preferences", p.UserID)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID                uuid.UUID  `db:"id"`
	Email             string     `db:"email"`
	PasswordHash      string     `db:"password_hash"`
	FirstName         *string    `db:"first_name"`
	LastName          *string    `db:"last_name"`
	ProfilePictureURL *string    `db:"profile_picture_url"`
	IsActive          bool       `db:"is_active"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
	LastLoginAt       *time.Time `db:"last_login_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:                r.ID,
		Email:             r.Email,
		PasswordHash:      r.PasswordHash,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		ProfilePictureURL: r.ProfilePictureURL,
		IsActive:          r.IsActive,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		LastLoginAt:       r.LastLoginAt,
	}
}

type preferencesRow struct {
	UserID               uuid.UUID `db:"user_id"`
	NotificationsEnabled bool      `db:"notifications_enabled"`
	DailyCheckInTime     *string   `db:"daily_check_in_time"`
	CravingAlertsEnabled bool      `db:"craving_alerts_enabled"`
	ChatbotTone          string    `db:"ai_chatbot_tone"`
	Language             string    `db:"language"`
	Theme                string    `db:"theme"`
	UpdatedAt            time.Time `db:"updated_at"`
}

func (r preferencesRow) toDomain() *domain.Preferences {
	return &domain.Preferences{
		UserID:               r.UserID,
		NotificationsEnabled: r.NotificationsEnabled,
		DailyCheckInTime:     r.DailyCheckInTime,
		CravingAlertsEnabled: r.CravingAlertsEnabled,
		ChatbotTone:          domain.ChatbotTone(r.ChatbotTone),
		Language:             r.Language,
		Theme:                domain.Theme(r.Theme),
		UpdatedAt:            r.UpdatedAt,
	}
}

// nullIfEmpty maps "" to SQL NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
