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

type expenseCategoryRepo struct {
	db *sqlx.DB
}

// NewExpenseCategoryRepo creates a new PostgreSQL-backed ExpenseCategoryRepository.
func NewExpenseCategoryRepo(db *sqlx.DB) port.ExpenseCategoryRepository {
	return &expenseCategoryRepo{db: db}
}

func (r *expenseCategoryRepo) Create(ctx context.Context, category *domain.ExpenseCategory) error {
	category.ID = uuid.New()
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expense_categories (id, name, icon, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, category.Icon, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("expenseCategoryRepo.Create: %w", err)
	}
	return nil
}

func (r *expenseCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExpenseCategory, error) {
	var category domain.ExpenseCategory
	err := r.db.GetContext(ctx, &category,
		"SELECT * FROM expense_categories WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("expenseCategoryRepo.GetByID: %w", err)
	}
	return &category, nil
}

func (r *expenseCategoryRepo) GetByName(ctx context.Context, name string) (*domain.ExpenseCategory, error) {
	var category domain.ExpenseCategory
	err := r.db.GetContext(ctx, &category,
		"SELECT * FROM expense_categories WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("expenseCategoryRepo.GetByName: %w", err)
	}
	return &category, nil
}

func (r *expenseCategoryRepo) List(ctx context.Context) ([]domain.ExpenseCategory, error) {
	var categories []domain.ExpenseCategory
	err := r.db.SelectContext(ctx, &categories,
		"SELECT * FROM expense_categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("expenseCategoryRepo.List: %w", err)
	}
	return categories, nil
}
