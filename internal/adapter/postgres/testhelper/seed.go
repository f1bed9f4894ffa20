package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with default preferences.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	first := "Test"
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpl",
		FirstName:    &first,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	prefs := domain.DefaultPreferences(user.ID)
	_, err = pool.Exec(ctx,
		`INSERT INTO user_preferences (user_id, notifications_enabled, craving_alerts_enabled, ai_chatbot_tone, language, theme, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		prefs.UserID, prefs.NotificationsEnabled, prefs.CravingAlertsEnabled,
		string(prefs.ChatbotTone), prefs.Language, string(prefs.Theme), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user_preferences: %v", err)
	}

	return user
}

// SeedQuitPlan creates a quit plan for userID with the given quit date
// (20/day, 10.00 per pack of 20).
func SeedQuitPlan(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, quitDate time.Time) domain.QuitPlan {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	plan := domain.QuitPlan{
		ID:                uuid.New(),
		UserID:            userID,
		QuitDate:          quitDate.UTC().Truncate(time.Microsecond),
		CigarettesPerDay:  20,
		CostPerPack:       10,
		CigarettesPerPack: domain.DefaultCigarettesPerPack,
		Motivations:       []string{"health"},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO quit_plans (id, user_id, quit_date, cigarettes_per_day, cost_per_pack, cigarettes_per_pack, motivations, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		plan.ID, plan.UserID, plan.QuitDate, plan.CigarettesPerDay, plan.CostPerPack,
		plan.CigarettesPerPack, plan.Motivations, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuitPlan: %v", err)
	}

	return plan
}

// SeedCraving logs a craving for userID.
func SeedCraving(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, intensity int, triggers []string, resolved bool) domain.Craving {
	t.Helper()

	c := domain.Craving{
		ID:                   uuid.New(),
		UserID:               userID,
		Intensity:            intensity,
		Triggers:             triggers,
		ReliefTechniquesUsed: []string{},
		Resolved:             resolved,
		CreatedAt:            time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cravings (id, user_id, intensity, triggers, relief_techniques_used, resolved, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.UserID, c.Intensity, c.Triggers, c.ReliefTechniquesUsed, c.Resolved, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCraving: %v", err)
	}

	return c
}

// MilestoneIDByName returns the id of a catalog entry seeded by migrations.
func MilestoneIDByName(t *testing.T, pool *pgxpool.Pool, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(), `SELECT id FROM milestones WHERE name = $1`, name).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: MilestoneIDByName(%q): %v", name, err)
	}
	return id
}
