package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"carline/internal/domain"
	"carline/internal/port"
)

type mileageRepo struct {
	db *sqlx.DB
}

// NewMileageRepo creates a new PostgreSQL-backed MileageRepository.
func NewMileageRepo(db *sqlx.DB) port.MileageRepository {
	return &mileageRepo{db: db}
}

func (r *mileageRepo) Create(ctx context.Context, m *domain.Mileage) error {
	m.ID = uuid.New()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	query := `INSERT INTO mileages (id, car_id, value, recorded_at, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.CarID, m.Value, m.RecordedAt, m.Comment, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("mileageRepo.Create: %w", err)
	}
	return nil
}

func (r *mileageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mileage, error) {
	var m domain.Mileage
	err := r.db.GetContext(ctx, &m, "SELECT * FROM mileages WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("mileageRepo.GetByID: %w", err)
	}
	return &m, nil
}

func (r *mileageRepo) ListByCar(ctx context.Context, carID uuid.UUID, offset, limit int) ([]domain.Mileage, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM mileages WHERE car_id = $1", carID)
	if err != nil {
		return nil, 0, fmt.Errorf("mileageRepo.ListByCar count: %w", err)
	}

	var records []domain.Mileage
	err = r.db.SelectContext(ctx, &records,
		"SELECT * FROM mileages WHERE car_id = $1 ORDER BY recorded_at DESC LIMIT $2 OFFSET $3",
		carID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("mileageRepo.ListByCar: %w", err)
	}
	return records, total, nil
}

func (r *mileageRepo) Update(ctx context.Context, m *domain.Mileage) error {
	m.UpdatedAt = time.Now().UTC()
	query := `UPDATE mileages SET value = $1, recorded_at = $2, comment = $3, updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		m.Value, m.RecordedAt, m.Comment, m.UpdatedAt, m.ID)
	if err != nil {
		return fmt.Errorf("mileageRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mileageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM mileages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("mileageRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
