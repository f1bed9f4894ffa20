package domain

import "time"

// SmokeFreeDuration is the elapsed time since the quit date, decomposed
// into calendar-like parts plus undecomposed totals.
type SmokeFreeDuration struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64

	TotalSeconds int64
	TotalMinutes int64
	TotalHours   int64
	TotalDays    int64
}

// LifeRegained is the cumulative life expectancy recovered.
type LifeRegained struct {
	Minutes int64
	Hours   int64
	Days    int64
}

// Statistics is the full set of derived metrics for a quit plan at an instant.
type Statistics struct {
	SmokeFreeTime       SmokeFreeDuration
	MoneySaved          float64
	CigarettesNotSmoked int64
	LifeRegained        LifeRegained
	CurrentStreak       int64
	QuitDate            time.Time
}
