package craving

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

const (
	minIntensity    = 1
	maxIntensity    = 10
	maxLabels       = 20
	maxLabelLen     = 100
	maxNotesLen     = 500
	maxDuration     = 86400
	defaultLimit    = 50
	maxLimit        = 100
	defaultDays     = 30
	maxDays         = 365
	topTriggerCount = 10
)

// CreateInput holds parameters for logging a craving.
type CreateInput struct {
	Intensity            int
	Triggers             []string
	ReliefTechniquesUsed []string
	Notes                *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Intensity < minIntensity || i.Intensity > maxIntensity {
		errs = append(errs, domain.FieldError{
			Field:   "intensity",
			Message: fmt.Sprintf("must be between %d and %d", minIntensity, maxIntensity),
		})
	}
	if len(i.Triggers) == 0 {
		errs = append(errs, domain.FieldError{Field: "triggers", Message: "at least one required"})
	} else if msg := checkLabels(i.Triggers); msg != "" {
		errs = append(errs, domain.FieldError{Field: "triggers", Message: msg})
	}
	if msg := checkLabels(i.ReliefTechniquesUsed); msg != "" {
		errs = append(errs, domain.FieldError{Field: "reliefTechniquesUsed", Message: msg})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{
			Field:   "notes",
			Message: fmt.Sprintf("must be at most %d characters", maxNotesLen),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the mutable craving fields. Nil means unchanged.
type UpdateInput struct {
	Resolved             *bool
	Duration             *int
	ReliefTechniquesUsed []string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Duration != nil && (*i.Duration < 0 || *i.Duration > maxDuration) {
		errs = append(errs, domain.FieldError{
			Field:   "duration",
			Message: fmt.Sprintf("must be between 0 and %d seconds", maxDuration),
		})
	}
	if msg := checkLabels(i.ReliefTechniquesUsed); msg != "" {
		errs = append(errs, domain.FieldError{Field: "reliefTechniquesUsed", Message: msg})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkLabels(labels []string) string {
	if len(labels) > maxLabels {
		return fmt.Sprintf("at most %d allowed", maxLabels)
	}
	for _, l := range labels {
		if strings.TrimSpace(l) == "" {
			return "must not contain empty values"
		}
		if len(l) > maxLabelLen {
			return "value too long"
		}
	}
	return ""
}

// normalizePage applies the default and maximum page size.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	return limit, max(offset, 0)
}

// normalizeDays applies the default and maximum analytics window.
func normalizeDays(days int) int {
	if days <= 0 {
		return defaultDays
	}
	return min(days, maxDays)
}
