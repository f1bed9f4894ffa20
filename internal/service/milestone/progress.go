package milestone

import (
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

// Inputs are the per-user measurements the progress rules compare against
// catalog thresholds.
type Inputs struct {
	HoursSinceQuit   float64
	ResolvedCravings int
	MoneySaved       float64
}

// metric returns the measurement a category is judged by.
func (in Inputs) metric(c domain.MilestoneCategory) float64 {
	switch c {
	case domain.MilestoneCategoryAchievement:
		return float64(in.ResolvedCravings)
	case domain.MilestoneCategorySavings:
		return in.MoneySaved
	default:
		return in.HoursSinceQuit
	}
}

// Reached reports whether the measurement meets the milestone threshold.
// A zero threshold is reached as soon as the measurement is non-negative.
func Reached(def domain.MilestoneDefinition, in Inputs) bool {
	return in.metric(def.Category) >= def.ThresholdValue
}

// Progress returns the 0..100 completion of def, rounded half-up.
// Values below the threshold never round up to 100.
func Progress(def domain.MilestoneDefinition, in Inputs) int {
	m := in.metric(def.Category)
	if Reached(def, in) {
		return 100
	}
	if def.ThresholdValue <= 0 || m <= 0 {
		return 0
	}

	p := int(math.Floor(m/def.ThresholdValue*100 + 0.5))
	return min(p, 99)
}

// TimeRemaining returns the rounded-up wait for a time-based milestone that
// has not been reached, or nil.
func TimeRemaining(def domain.MilestoneDefinition, hoursSinceQuit float64) *domain.TimeRemaining {
	if !def.Category.IsTimeBased() || hoursSinceQuit >= def.ThresholdValue {
		return nil
	}

	hours := int(math.Ceil(def.ThresholdValue - hoursSinceQuit))
	return &domain.TimeRemaining{
		Hours: hours,
		Days:  int(math.Ceil(float64(hours) / 24)),
	}
}

// Evaluate projects every catalog entry for a user. Unlock state comes only
// from unlocks, keyed by milestone id.
func Evaluate(catalog []domain.MilestoneDefinition, unlocks map[uuid.UUID]domain.UnlockRecord, in Inputs) []domain.MilestoneProgress {
	out := make([]domain.MilestoneProgress, 0, len(catalog))
	for _, def := range catalog {
		item := domain.MilestoneProgress{
			Milestone: def,
			Progress:  Progress(def, in),
		}

		if rec, ok := unlocks[def.ID]; ok {
			at := rec.UnlockedAt
			item.Unlocked = true
			item.UnlockedAt = &at
		} else {
			item.TimeRemaining = TimeRemaining(def, in.HoursSinceQuit)
		}

		out = append(out, item)
	}
	return out
}
