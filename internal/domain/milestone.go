package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MilestoneDefinition is a catalog entry. Catalog rows are seeded by
// migrations and never modified by user actions.
type MilestoneDefinition struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    MilestoneCategory
	// DurationHours is kept for clients that display the time window; the
	// progress rules read ThresholdValue/ThresholdUnit.
	DurationHours  float64
	ThresholdValue float64
	ThresholdUnit  ThresholdUnit
	Icon           *string
	CreatedAt      time.Time
}

// Validate checks that the threshold unit matches the category rule.
func (m MilestoneDefinition) Validate() error {
	if !m.Category.IsValid() {
		return fmt.Errorf("milestone %s: unknown category %q", m.ID, m.Category)
	}
	if m.ThresholdValue < 0 {
		return fmt.Errorf("milestone %s: negative threshold %v", m.ID, m.ThresholdValue)
	}

	want := ThresholdUnitHours
	switch m.Category {
	case MilestoneCategoryAchievement:
		want = ThresholdUnitResolvedCravings
	case MilestoneCategorySavings:
		want = ThresholdUnitCurrency
	}
	if m.ThresholdUnit != want {
		return fmt.Errorf("milestone %s: category %s requires unit %s, got %q", m.ID, m.Category, want, m.ThresholdUnit)
	}
	return nil
}

// UnlockRecord marks that a user crossed a milestone threshold.
// At most one exists per (UserID, MilestoneID).
type UnlockRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	MilestoneID uuid.UUID
	UnlockedAt  time.Time
	Shared      bool

	// Milestone is populated by listings that join the catalog.
	Milestone *MilestoneDefinition
}

// TimeRemaining is the rounded-up wait until a time-based milestone unlocks.
type TimeRemaining struct {
	Hours int
	Days  int
}

// MilestoneProgress is the read-only projection of one catalog entry for a user.
type MilestoneProgress struct {
	Milestone     MilestoneDefinition
	Unlocked      bool
	UnlockedAt    *time.Time
	Progress      int // 0..100
	TimeRemaining *TimeRemaining
}
