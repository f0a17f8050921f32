package jobs

import (
	"context"
	"time"

	"motorent-backend/internal/logger"
)

// ScanOverdueRentals reports rentals past their expected end date that
// have not been returned yet.
func (jr *JobRunner) ScanOverdueRentals() {
	jr.runWithRecovery("ScanOverdueRentals", func() {
		ctx := context.Background()

		overdue, err := jr.rentalRepo.ListOverdue(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		for _, rental := range overdue {
			daysOverdue := int(time.Now().UTC().Sub(rental.ExpectedEndDate) / (24 * time.Hour))
			logger.Warn("Rental overdue",
				"rental_id", rental.ID,
				"deliveryman_id", rental.DeliverymanID,
				"motorcycle_id", rental.MotorcycleID,
				"expected_end_date", rental.ExpectedEndDate,
				"days_overdue", daysOverdue,
			)
		}

		logger.Info("Overdue rental scan finished", "count", len(overdue))
	})
}
