package statistics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

// DefaultMinutesPerCigarette is the life expectancy regained per avoided
// cigarette, in minutes.
const DefaultMinutesPerCigarette = 11

const (
	daysPerWeek  = 7
	daysPerMonth = 30
	daysPerYear  = 365
)

// SmokeFreeDuration decomposes the time elapsed between quitDate and now.
// A quit date in the future yields the zero duration.
func SmokeFreeDuration(quitDate, now time.Time) domain.SmokeFreeDuration {
	elapsed := now.Sub(quitDate)
	if elapsed <= 0 {
		return domain.SmokeFreeDuration{}
	}

	totalSeconds := int64(elapsed / time.Second)
	totalMinutes := totalSeconds / 60
	totalHours := totalMinutes / 60
	totalDays := totalHours / 24

	return domain.SmokeFreeDuration{
		Days:         totalDays,
		Hours:        totalHours % 24,
		Minutes:      totalMinutes % 60,
		Seconds:      totalSeconds % 60,
		TotalSeconds: totalSeconds,
		TotalMinutes: totalMinutes,
		TotalHours:   totalHours,
		TotalDays:    totalDays,
	}
}

// HoursSinceQuit returns fractional hours between quitDate and now.
// The result is negative while the quit date lies in the future.
func HoursSinceQuit(quitDate, now time.Time) float64 {
	return now.Sub(quitDate).Hours()
}

// effectiveDays is whole days plus proportional credit for the hours of the
// current day.
func effectiveDays(d domain.SmokeFreeDuration) decimal.Decimal {
	return decimal.NewFromInt(d.TotalDays).
		Add(decimal.NewFromInt(d.Hours).Div(decimal.NewFromInt(24)))
}

// costPerDay is the daily spend implied by the habits.
func costPerDay(h domain.Habits) decimal.Decimal {
	if h.CigarettesPerPack <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(h.CigarettesPerDay)).
		Div(decimal.NewFromInt(int64(h.CigarettesPerPack))).
		Mul(decimal.NewFromFloat(h.CostPerPack))
}

// MoneySaved is costPerDay × effective days, rounded half-up to cents.
func MoneySaved(h domain.Habits, d domain.SmokeFreeDuration) float64 {
	return costPerDay(h).Mul(effectiveDays(d)).Round(2).InexactFloat64()
}

// CigarettesNotSmoked is cigarettesPerDay × effective days, floored.
func CigarettesNotSmoked(cigarettesPerDay int, d domain.SmokeFreeDuration) int64 {
	// cpd × (days + hours/24) == cpd × (24·days + hours) / 24, exact in integers.
	return int64(cigarettesPerDay) * (24*d.TotalDays + d.Hours) / 24
}

// LifeRegained converts avoided cigarettes into cumulative minutes, hours and
// days. minutesPerCigarette <= 0 falls back to DefaultMinutesPerCigarette.
func LifeRegained(cigarettesNotSmoked int64, minutesPerCigarette int) domain.LifeRegained {
	if minutesPerCigarette <= 0 {
		minutesPerCigarette = DefaultMinutesPerCigarette
	}
	minutes := cigarettesNotSmoked * int64(minutesPerCigarette)
	hours := minutes / 60
	return domain.LifeRegained{
		Minutes: minutes,
		Hours:   hours,
		Days:    hours / 24,
	}
}

// Compute derives the full statistics set for a plan at now.
func Compute(plan *domain.QuitPlan, now time.Time, minutesPerCigarette int) domain.Statistics {
	d := SmokeFreeDuration(plan.QuitDate, now)
	cigs := CigarettesNotSmoked(plan.CigarettesPerDay, d)

	return domain.Statistics{
		SmokeFreeTime:       d,
		MoneySaved:          MoneySaved(plan.Habits(), d),
		CigarettesNotSmoked: cigs,
		LifeRegained:        LifeRegained(cigs, minutesPerCigarette),
		CurrentStreak:       d.TotalDays,
		QuitDate:            plan.QuitDate,
	}
}

// ProjectSavings returns the money saved per day, week, 30-day month and
// 365-day year, each rounded to cents.
func ProjectSavings(h domain.Habits) domain.Savings {
	daily := costPerDay(h)
	round := func(days int64) float64 {
		return daily.Mul(decimal.NewFromInt(days)).Round(2).InexactFloat64()
	}
	return domain.Savings{
		Daily:   round(1),
		Weekly:  round(daysPerWeek),
		Monthly: round(daysPerMonth),
		Yearly:  round(daysPerYear),
	}
}
