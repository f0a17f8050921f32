package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type deliverymanRepository struct {
	db *sql.DB
}

func NewDeliverymanRepository(db *sql.DB) repository.DeliverymanRepository {
	return &deliverymanRepository{db: db}
}

func (r *deliverymanRepository) Create(ctx context.Context, d *domain.Deliveryman) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now().UTC()
	d.CreatedOn = now
	d.UpdatedOn = now
	query := `INSERT INTO deliverymen (id, name, cnpj, birth_date, license_number, license_type, license_image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.Name, d.CNPJ, d.BirthDate, d.LicenseNumber, d.LicenseType, d.LicenseImageURL, d.CreatedOn, d.UpdatedOn)
	return err
}

func (r *deliverymanRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deliveryman, error) {
	d := &domain.Deliveryman{}
	query := `SELECT id, name, cnpj, birth_date, license_number, license_type, license_image_url, created_on, updated_on
	          FROM deliverymen WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.CNPJ, &d.BirthDate, &d.LicenseNumber, &d.LicenseType, &d.LicenseImageURL, &d.CreatedOn, &d.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *deliverymanRepository) GetByCNPJ(ctx context.Context, cnpj string) (*domain.Deliveryman, error) {
	d := &domain.Deliveryman{}
	query := `SELECT id, name, cnpj, birth_date, license_number, license_type, license_image_url, created_on, updated_on
	          FROM deliverymen WHERE cnpj = $1`
	err := r.db.QueryRowContext(ctx, query, cnpj).Scan(&d.ID, &d.Name, &d.CNPJ, &d.BirthDate, &d.LicenseNumber, &d.LicenseType, &d.LicenseImageURL, &d.CreatedOn, &d.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *deliverymanRepository) List(ctx context.Context) ([]domain.Deliveryman, error) {
	query := `SELECT id, name, cnpj, birth_date, license_number, license_type, license_image_url, created_on, updated_on
	          FROM deliverymen ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliverymen []domain.Deliveryman
	for rows.Next() {
		var d domain.Deliveryman
		if err := rows.Scan(&d.ID, &d.Name, &d.CNPJ, &d.BirthDate, &d.LicenseNumber, &d.LicenseType, &d.LicenseImageURL, &d.CreatedOn, &d.UpdatedOn); err != nil {
			return nil, err
		}
		deliverymen = append(deliverymen, d)
	}
	return deliverymen, rows.Err()
}

func (r *deliverymanRepository) Update(ctx context.Context, d *domain.Deliveryman) error {
	query := `UPDATE deliverymen SET name=$1, cnpj=$2, birth_date=$3, license_number=$4, license_type=$5, license_image_url=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, d.Name, d.CNPJ, d.BirthDate, d.LicenseNumber, d.LicenseType, d.LicenseImageURL, time.Now().UTC(), d.ID)
	return err
}

func (r *deliverymanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM deliverymen WHERE id = $1`, id)
	return err
}
