package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, motorcycle_id, deliveryman_id, start_date, end_date, expected_end_date, plan, total_cost_cents, returned_on, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	now := time.Now().UTC()
	rt.CreatedOn = now
	rt.UpdatedOn = now
	query := `INSERT INTO rentals (id, motorcycle_id, deliveryman_id, start_date, end_date, expected_end_date, plan, total_cost_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.MotorcycleID, rt.DeliverymanID, rt.StartDate, rt.EndDate, rt.ExpectedEndDate, int(rt.Plan), rt.TotalCostCents, rt.CreatedOn, rt.UpdatedOn)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET end_date=$1, total_cost_cents=$2, returned_on=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, rt.EndDate, rt.TotalCostCents, rt.ReturnedOn, time.Now().UTC(), rt.ID)
	return err
}

func (r *rentalRepository) ListByDeliveryman(ctx context.Context, deliverymanID uuid.UUID) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE deliveryman_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, deliverymanID)
	if err != nil {
		return nil, err
	}
	return collectRentals(rows)
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectRentals(rows)
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE returned_on IS NULL AND expected_end_date < $1 ORDER BY expected_end_date`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	return collectRentals(rows)
}

func (r *rentalRepository) CountByMotorcycle(ctx context.Context, motorcycleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE motorcycle_id = $1`, motorcycleID).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRentalInto(s rowScanner, rt *domain.Rental) error {
	var plan int
	var returnedOn sql.NullTime
	err := s.Scan(&rt.ID, &rt.MotorcycleID, &rt.DeliverymanID, &rt.StartDate, &rt.EndDate, &rt.ExpectedEndDate, &plan, &rt.TotalCostCents, &returnedOn, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return err
	}
	rt.Plan = domain.RentalPlan(plan)
	if returnedOn.Valid {
		t := returnedOn.Time
		rt.ReturnedOn = &t
	}
	return nil
}

func scanRental(s rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	if err := scanRentalInto(s, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func collectRentals(rows *sql.Rows) ([]domain.Rental, error) {
	defer rows.Close()
	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := scanRentalInto(rows, &rt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
