package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCigarettesPerPack is used when a plan is created without a pack size.
const DefaultCigarettesPerPack = 20

// QuitPlan is a user's declared quit moment and prior smoking habits.
// There is at most one plan per user.
type QuitPlan struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	QuitDate          time.Time
	CigarettesPerDay  int
	CostPerPack       float64
	CigarettesPerPack int
	Motivations       []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Habits returns the consumption parameters used by the statistics engine.
func (p *QuitPlan) Habits() Habits {
	return Habits{
		CigarettesPerDay:  p.CigarettesPerDay,
		CostPerPack:       p.CostPerPack,
		CigarettesPerPack: p.CigarettesPerPack,
	}
}

// Habits describes what the user smoked before quitting.
type Habits struct {
	CigarettesPerDay  int
	CostPerPack       float64
	CigarettesPerPack int
}

// Savings is the projected amount saved per period, rounded to cents.
type Savings struct {
	Daily   float64
	Weekly  float64
	Monthly float64
	Yearly  float64
}
