package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type registrationEventRepository struct {
	db *sql.DB
}

func NewRegistrationEventRepository(db *sql.DB) repository.RegistrationEventRepository {
	return &registrationEventRepository{db: db}
}

func (r *registrationEventRepository) Create(ctx context.Context, e *domain.RegistrationEvent) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedOn = time.Now().UTC()
	query := `INSERT INTO registration_events (id, motorcycle_id, registration_date, message, created_on)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.MotorcycleID, e.RegistrationDate, e.Message, e.CreatedOn)
	return err
}

func (r *registrationEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RegistrationEvent, error) {
	e := &domain.RegistrationEvent{}
	query := `SELECT id, motorcycle_id, registration_date, message, created_on FROM registration_events WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.MotorcycleID, &e.RegistrationDate, &e.Message, &e.CreatedOn)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *registrationEventRepository) List(ctx context.Context) ([]domain.RegistrationEvent, error) {
	query := `SELECT id, motorcycle_id, registration_date, message, created_on FROM registration_events ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.RegistrationEvent
	for rows.Next() {
		var e domain.RegistrationEvent
		if err := rows.Scan(&e.ID, &e.MotorcycleID, &e.RegistrationDate, &e.Message, &e.CreatedOn); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
