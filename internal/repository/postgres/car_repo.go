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

type carRepo struct {
	db *sqlx.DB
}

// NewCarRepo creates a new PostgreSQL-backed CarRepository.
func NewCarRepo(db *sqlx.DB) port.CarRepository {
	return &carRepo{db: db}
}

func (r *carRepo) Create(ctx context.Context, car *domain.Car) error {
	car.ID = uuid.New()
	now := time.Now().UTC()
	car.CreatedAt = now
	car.UpdatedAt = now

	query := `INSERT INTO cars (id, user_id, make, model, year, initial_mileage, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		car.ID, car.UserID, car.Make, car.Model, car.Year, car.InitialMileage,
		car.IsActive, car.CreatedAt, car.UpdatedAt)
	if err != nil {
		return fmt.Errorf("carRepo.Create: %w", err)
	}
	return nil
}

func (r *carRepo) GetByID(ctx context.Context, userID, carID uuid.UUID) (*domain.Car, error) {
	var car domain.Car
	err := r.db.GetContext(ctx, &car,
		"SELECT * FROM cars WHERE id = $1 AND user_id = $2", carID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("carRepo.GetByID: %w", err)
	}
	return &car, nil
}

func (r *carRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Car, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM cars WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("carRepo.ListByUser count: %w", err)
	}

	var cars []domain.Car
	err = r.db.SelectContext(ctx, &cars,
		"SELECT * FROM cars WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("carRepo.ListByUser: %w", err)
	}
	return cars, total, nil
}

func (r *carRepo) Update(ctx context.Context, car *domain.Car) error {
	car.UpdatedAt = time.Now().UTC()
	query := `UPDATE cars SET make = $1, model = $2, year = $3, initial_mileage = $4, is_active = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8`
	result, err := r.db.ExecContext(ctx, query,
		car.Make, car.Model, car.Year, car.InitialMileage, car.IsActive, car.UpdatedAt,
		car.ID, car.UserID)
	if err != nil {
		return fmt.Errorf("carRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *carRepo) Delete(ctx context.Context, userID, carID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM cars WHERE id = $1 AND user_id = $2", carID, userID)
	if err != nil {
		return fmt.Errorf("carRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *carRepo) IsOwnedBy(ctx context.Context, carID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM cars WHERE id = $1 AND user_id = $2)", carID, userID)
	if err != nil {
		return false, fmt.Errorf("carRepo.IsOwnedBy: %w", err)
	}
	return exists, nil
}
