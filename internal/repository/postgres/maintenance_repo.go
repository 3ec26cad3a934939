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

type maintenanceRepo struct {
	db *sqlx.DB
}

// NewMaintenanceRepo creates a new PostgreSQL-backed MaintenanceRepository.
func NewMaintenanceRepo(db *sqlx.DB) port.MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

func (r *maintenanceRepo) Create(ctx context.Context, m *domain.Maintenance) error {
	m.ID = uuid.New()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	query := `INSERT INTO maintenances (id, car_id, service_type, mileage_at_service, service_date, cost, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.CarID, m.ServiceType, m.MileageAtService, m.ServiceDate, m.Cost,
		m.Description, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("maintenanceRepo.Create: %w", err)
	}
	return nil
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Maintenance, error) {
	var m domain.Maintenance
	err := r.db.GetContext(ctx, &m, "SELECT * FROM maintenances WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("maintenanceRepo.GetByID: %w", err)
	}
	return &m, nil
}

func (r *maintenanceRepo) ListByCar(ctx context.Context, carID uuid.UUID, filter port.RangeFilter) ([]domain.Maintenance, int, error) {
	where := "car_id = $1"
	args := []interface{}{carID}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND service_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND service_date <= $%d", len(args))
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM maintenances WHERE %s", where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("maintenanceRepo.ListByCar count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT * FROM maintenances WHERE %s
		ORDER BY service_date DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	var records []domain.Maintenance
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, 0, fmt.Errorf("maintenanceRepo.ListByCar: %w", err)
	}
	return records, total, nil
}

func (r *maintenanceRepo) Update(ctx context.Context, m *domain.Maintenance) error {
	m.UpdatedAt = time.Now().UTC()
	query := `UPDATE maintenances SET service_type = $1, mileage_at_service = $2, service_date = $3, cost = $4, description = $5, updated_at = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		m.ServiceType, m.MileageAtService, m.ServiceDate, m.Cost, m.Description,
		m.UpdatedAt, m.ID)
	if err != nil {
		return fmt.Errorf("maintenanceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *maintenanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM maintenances WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("maintenanceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
