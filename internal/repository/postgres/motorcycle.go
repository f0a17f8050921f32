package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type motorcycleRepository struct {
	db *sql.DB
}

func NewMotorcycleRepository(db *sql.DB) repository.MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

func (r *motorcycleRepository) Create(ctx context.Context, m *domain.Motorcycle) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC()
	m.CreatedOn = now
	m.UpdatedOn = now
	query := `INSERT INTO motorcycles (id, year, model, license_plate, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Year, m.Model, m.LicensePlate, m.CreatedOn, m.UpdatedOn)
	return err
}

func (r *motorcycleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error) {
	m := &domain.Motorcycle{}
	query := `SELECT id, year, model, license_plate, created_on, updated_on FROM motorcycles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Year, &m.Model, &m.LicensePlate, &m.CreatedOn, &m.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *motorcycleRepository) GetByLicensePlate(ctx context.Context, plate string) (*domain.Motorcycle, error) {
	m := &domain.Motorcycle{}
	query := `SELECT id, year, model, license_plate, created_on, updated_on FROM motorcycles WHERE license_plate = $1`
	err := r.db.QueryRowContext(ctx, query, plate).Scan(&m.ID, &m.Year, &m.Model, &m.LicensePlate, &m.CreatedOn, &m.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *motorcycleRepository) List(ctx context.Context, plate string) ([]domain.Motorcycle, error) {
	query := `SELECT id, year, model, license_plate, created_on, updated_on FROM motorcycles`
	args := []interface{}{}
	if plate != "" {
		query += ` WHERE license_plate = $1`
		args = append(args, plate)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var motorcycles []domain.Motorcycle
	for rows.Next() {
		var m domain.Motorcycle
		if err := rows.Scan(&m.ID, &m.Year, &m.Model, &m.LicensePlate, &m.CreatedOn, &m.UpdatedOn); err != nil {
			return nil, err
		}
		motorcycles = append(motorcycles, m)
	}
	return motorcycles, rows.Err()
}

func (r *motorcycleRepository) Update(ctx context.Context, m *domain.Motorcycle) error {
	query := `UPDATE motorcycles SET year=$1, model=$2, license_plate=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, m.Year, m.Model, m.LicensePlate, time.Now().UTC(), m.ID)
	return err
}

func (r *motorcycleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM motorcycles WHERE id = $1`, id)
	return err
}
