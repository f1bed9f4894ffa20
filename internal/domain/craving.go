package domain

import (
	"time"

	"github.com/google/uuid"
)

// Craving is a single logged urge to smoke.
// Only Resolved, Duration and ReliefTechniquesUsed change after creation.
type Craving struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Intensity            int
	Triggers             []string
	ReliefTechniquesUsed []string
	Duration             *int // seconds
	Notes                *string
	Resolved             bool
	CreatedAt            time.Time
}

// CravingPatch lists the mutable craving fields to change; nil means unchanged.
type CravingPatch struct {
	Resolved             *bool
	Duration             *int // seconds
	ReliefTechniquesUsed []string
}

// TriggerCount is how often a trigger label was reported.
type TriggerCount struct {
	Trigger string
	Count   int
}

// DayCount is the number of cravings logged on a calendar day (UTC).
type DayCount struct {
	Date  time.Time
	Count int
}

// CravingTotals is the aggregate row behind craving analytics.
type CravingTotals struct {
	Total            int
	Resolved         int
	AverageIntensity float64
}

// CravingAnalytics summarises a user's cravings over a trailing window.
type CravingAnalytics struct {
	TotalCravings      int
	AverageIntensity   float64
	MostCommonTriggers []TriggerCount
	CravingsByDay      []DayCount
	ResolutionRate     float64
}
