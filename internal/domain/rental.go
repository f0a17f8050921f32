package domain

import (
	"time"

	"github.com/google/uuid"
)

// RentalPlan is the fixed-duration rental tier. The value is the plan
// length in days; only the five enumerated values are valid.
type RentalPlan int

const (
	PlanSevenDays     RentalPlan = 7
	PlanFifteenDays   RentalPlan = 15
	PlanThirtyDays    RentalPlan = 30
	PlanFortyFiveDays RentalPlan = 45
	PlanFiftyDays     RentalPlan = 50
)

// Valid reports whether p is one of the five recognized plans.
func (p RentalPlan) Valid() bool {
	switch p {
	case PlanSevenDays, PlanFifteenDays, PlanThirtyDays, PlanFortyFiveDays, PlanFiftyDays:
		return true
	}
	return false
}

// Days returns the plan duration in days.
func (p RentalPlan) Days() int {
	return int(p)
}

// Rental is an agreement binding a motorcycle to a deliveryman for a
// fixed plan. StartDate is always the day after creation. EndDate starts
// equal to ExpectedEndDate and is overwritten with the actual return date
// when the motorcycle comes back; TotalCostCents is overwritten with the
// final computed cost at the same time. No other mutation happens.
type Rental struct {
	ID              uuid.UUID  `json:"id"`
	MotorcycleID    uuid.UUID  `json:"motorcycle_id"`
	DeliverymanID   uuid.UUID  `json:"deliveryman_id"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	ExpectedEndDate time.Time  `json:"expected_end_date"`
	Plan            RentalPlan `json:"plan"`
	TotalCostCents  int64      `json:"total_cost_cents"`
	ReturnedOn      *time.Time `json:"returned_on,omitempty"`
	CreatedOn       time.Time  `json:"created_on"`
	UpdatedOn       time.Time  `json:"updated_on"`
}

// Returned reports whether the rental reached its terminal state.
func (r *Rental) Returned() bool {
	return r.ReturnedOn != nil
}
