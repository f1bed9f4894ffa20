package quitplan

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

const (
	maxCigarettesPerDay  = 200
	maxCostPerPack       = 1000
	maxCigarettesPerPack = 50
	maxMotivations       = 20
	maxMotivationLen     = 500
)

// CreateInput holds parameters for plan creation.
// CigarettesPerPack defaults to domain.DefaultCigarettesPerPack when zero.
type CreateInput struct {
	QuitDate          time.Time
	CigarettesPerDay  int
	CostPerPack       float64
	CigarettesPerPack int
	Motivations       []string
}

// Validate checks field ranges. The quit date window is checked separately
// because it depends on the current time.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.QuitDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "quitDate", Message: "required"})
	}
	errs = append(errs, validateHabits(&i.CigarettesPerDay, &i.CostPerPack, packSizeOrNil(i.CigarettesPerPack))...)
	errs = append(errs, validateMotivations(i.Motivations)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func packSizeOrNil(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// UpdateInput holds a partial plan update. Nil fields are left unchanged.
type UpdateInput struct {
	QuitDate          *time.Time
	CigarettesPerDay  *int
	CostPerPack       *float64
	CigarettesPerPack *int
	Motivations       []string // nil = unchanged
}

// IsEmpty reports whether the update changes nothing.
func (i UpdateInput) IsEmpty() bool {
	return i.QuitDate == nil && i.CigarettesPerDay == nil && i.CostPerPack == nil &&
		i.CigarettesPerPack == nil && i.Motivations == nil
}

// Validate checks the fields that are present.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.QuitDate != nil && i.QuitDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "quitDate", Message: "invalid"})
	}
	errs = append(errs, validateHabits(i.CigarettesPerDay, i.CostPerPack, i.CigarettesPerPack)...)
	if i.Motivations != nil {
		errs = append(errs, validateMotivations(i.Motivations)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateHabits(perDay *int, cost *float64, perPack *int) []domain.FieldError {
	var errs []domain.FieldError

	if perDay != nil && (*perDay < 1 || *perDay > maxCigarettesPerDay) {
		errs = append(errs, domain.FieldError{
			Field:   "cigarettesPerDay",
			Message: fmt.Sprintf("must be between 1 and %d", maxCigarettesPerDay),
		})
	}
	if cost != nil && (*cost <= 0 || *cost > maxCostPerPack) {
		errs = append(errs, domain.FieldError{
			Field:   "costPerPack",
			Message: fmt.Sprintf("must be positive and at most %d", maxCostPerPack),
		})
	}
	if perPack != nil && (*perPack < 1 || *perPack > maxCigarettesPerPack) {
		errs = append(errs, domain.FieldError{
			Field:   "cigarettesPerPack",
			Message: fmt.Sprintf("must be between 1 and %d", maxCigarettesPerPack),
		})
	}
	return errs
}

func validateMotivations(m []string) []domain.FieldError {
	switch {
	case len(m) == 0:
		return []domain.FieldError{{Field: "motivations", Message: "at least one required"}}
	case len(m) > maxMotivations:
		return []domain.FieldError{{Field: "motivations", Message: fmt.Sprintf("at most %d allowed", maxMotivations)}}
	}
	for _, s := range m {
		if strings.TrimSpace(s) == "" {
			return []domain.FieldError{{Field: "motivations", Message: "must not contain empty values"}}
		}
		if len(s) > maxMotivationLen {
			return []domain.FieldError{{Field: "motivations", Message: "value too long"}}
		}
	}
	return nil
}

// checkQuitDate returns domain.ErrInvalidQuitDate when quitDate lies outside
// [now-grace, now+maxAhead].
func (w QuitDateWindow) checkQuitDate(quitDate, now time.Time) error {
	if quitDate.After(now.Add(w.MaxAhead)) {
		return fmt.Errorf("%w: must be within the next %d days", domain.ErrInvalidQuitDate, int(w.MaxAhead.Hours()/24))
	}
	if quitDate.Before(now.Add(-w.Grace)) {
		return fmt.Errorf("%w: cannot be in the past", domain.ErrInvalidQuitDate)
	}
	return nil
}
