// Package pricing computes rental costs. Every function is a pure
// computation over the plan rate table and a handful of dates; there is
// no I/O and no state.
package pricing

import (
	"errors"
	"time"

	"motorent-backend/internal/domain"
)

var (
	// ErrInvalidPlan means a plan value outside the closed set reached
	// the engine. That is a programming or data error, never user input.
	ErrInvalidPlan = errors.New("invalid rental plan")

	// ErrInvalidReturnDate means the actual return date precedes the
	// rental start date.
	ErrInvalidReturnDate = errors.New("return date precedes rental start date")
)

// Flat fee charged for each day past the expected end date, independent
// of plan.
const lateFeePerDayCents int64 = 5000

// DailyRateCents returns the per-day rate for a plan.
func DailyRateCents(plan domain.RentalPlan) (int64, error) {
	switch plan {
	case domain.PlanSevenDays:
		return 3000, nil
	case domain.PlanFifteenDays:
		return 2800, nil
	case domain.PlanThirtyDays:
		return 2200, nil
	case domain.PlanFortyFiveDays:
		return 2000, nil
	case domain.PlanFiftyDays:
		return 1800, nil
	}
	return 0, ErrInvalidPlan
}

// penaltyPercent is the early-return penalty applied to the value of
// unused days. Only the two shortest plans carry one.
func penaltyPercent(plan domain.RentalPlan) int64 {
	switch plan {
	case domain.PlanSevenDays:
		return 20
	case domain.PlanFifteenDays:
		return 40
	}
	return 0
}

// InitialCostCents is the full planned-duration cost set at rental
// creation: whole days between start and end times the daily rate.
func InitialCostCents(plan domain.RentalPlan, start, end time.Time) (int64, error) {
	rate, err := DailyRateCents(plan)
	if err != nil {
		return 0, err
	}
	return int64(daysBetween(start, end)) * rate, nil
}

// FinalCostCents is the settlement amount at return time. On-time or
// early returns pay for used days plus a plan-specific penalty on the
// unused remainder; late returns pay the full planned cost plus a flat
// per-day late fee.
func FinalCostCents(plan domain.RentalPlan, start, expectedEnd, actualReturn time.Time) (int64, error) {
	rate, err := DailyRateCents(plan)
	if err != nil {
		return 0, err
	}
	if actualReturn.Before(start) {
		return 0, ErrInvalidReturnDate
	}

	plannedDays := int64(daysBetween(start, expectedEnd))
	actualDays := int64(daysBetween(start, actualReturn))

	if !actualReturn.After(expectedEnd) {
		usedDays := actualDays
		if plannedDays < usedDays {
			usedDays = plannedDays
		}
		unusedDays := plannedDays - usedDays
		base := usedDays * rate
		penalty := unusedDays * rate * penaltyPercent(plan) / 100
		return base + penalty, nil
	}

	base := plannedDays * rate
	extraDays := actualDays - plannedDays
	return base + extraDays*lateFeePerDayCents, nil
}

// daysBetween counts whole calendar days from a to b, truncating any
// fractional remainder.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
