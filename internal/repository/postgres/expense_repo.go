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

type expenseRepo struct {
	db *sqlx.DB
}

// NewExpenseRepo creates a new PostgreSQL-backed ExpenseRepository.
func NewExpenseRepo(db *sqlx.DB) port.ExpenseRepository {
	return &expenseRepo{db: db}
}

const expenseColumns = `e.id, e.car_id, e.category_id, e.amount, e.expense_date, e.description,
	e.created_at, e.updated_at, c.name AS category_name, c.icon AS category_icon`

func (r *expenseRepo) Create(ctx context.Context, expense *domain.Expense) error {
	expense.ID = uuid.New()
	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	query := `INSERT INTO expenses (id, car_id, category_id, amount, expense_date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		expense.ID, expense.CarID, expense.CategoryID, expense.Amount,
		expense.ExpenseDate, expense.Description, expense.CreatedAt, expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("expenseRepo.Create: %w", err)
	}
	return nil
}

func (r *expenseRepo) GetByID(ctx context.Context, expenseID uuid.UUID) (*domain.Expense, error) {
	var expense domain.Expense
	query := fmt.Sprintf(`SELECT %s FROM expenses e
		JOIN expense_categories c ON c.id = e.category_id
		WHERE e.id = $1`, expenseColumns)
	err := r.db.GetContext(ctx, &expense, query, expenseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("expenseRepo.GetByID: %w", err)
	}
	return &expense, nil
}

func (r *expenseRepo) ListByCar(ctx context.Context, carID uuid.UUID, filter port.ExpenseFilter) ([]domain.Expense, int, error) {
	where := "e.car_id = $1"
	args := []interface{}{carID}
	where, args = appendExpenseFilter(where, args, filter)
	return r.list(ctx, where, args, filter.Limit, filter.Offset, "expenseRepo.ListByCar")
}

func (r *expenseRepo) ListByUser(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, filter port.ExpenseFilter) ([]domain.Expense, int, error) {
	where := "car.user_id = $1"
	args := []interface{}{userID}
	if carID != nil {
		args = append(args, *carID)
		where += fmt.Sprintf(" AND e.car_id = $%d", len(args))
	}
	where, args = appendExpenseFilter(where, args, filter)
	return r.list(ctx, where, args, filter.Limit, filter.Offset, "expenseRepo.ListByUser")
}

func appendExpenseFilter(where string, args []interface{}, filter port.ExpenseFilter) (string, []interface{}) {
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where += fmt.Sprintf(" AND e.category_id = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND e.expense_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND e.expense_date <= $%d", len(args))
	}
	return where, args
}

func (r *expenseRepo) list(ctx context.Context, where string, args []interface{}, limit, offset int, op string) ([]domain.Expense, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM expenses e
		JOIN cars car ON car.id = e.car_id
		WHERE %s`, where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("%s count: %w", op, err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM expenses e
		JOIN expense_categories c ON c.id = e.category_id
		JOIN cars car ON car.id = e.car_id
		WHERE %s
		ORDER BY e.expense_date DESC
		LIMIT $%d OFFSET $%d`, expenseColumns, where, len(args)-1, len(args))

	var expenses []domain.Expense
	if err := r.db.SelectContext(ctx, &expenses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return expenses, total, nil
}

func (r *expenseRepo) ListForStats(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, from, to *time.Time) ([]domain.Expense, error) {
	where := "car.user_id = $1"
	args := []interface{}{userID}
	if carID != nil {
		args = append(args, *carID)
		where += fmt.Sprintf(" AND e.car_id = $%d", len(args))
	}
	if from != nil {
		args = append(args, *from)
		where += fmt.Sprintf(" AND e.expense_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += fmt.Sprintf(" AND e.expense_date <= $%d", len(args))
	}

	query := fmt.Sprintf(`SELECT %s FROM expenses e
		JOIN expense_categories c ON c.id = e.category_id
		JOIN cars car ON car.id = e.car_id
		WHERE %s
		ORDER BY e.expense_date DESC`, expenseColumns, where)

	var expenses []domain.Expense
	if err := r.db.SelectContext(ctx, &expenses, query, args...); err != nil {
		return nil, fmt.Errorf("expenseRepo.ListForStats: %w", err)
	}
	return expenses, nil
}

func (r *expenseRepo) Update(ctx context.Context, expense *domain.Expense) error {
	expense.UpdatedAt = time.Now().UTC()
	query := `UPDATE expenses SET category_id = $1, amount = $2, expense_date = $3, description = $4, updated_at = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query,
		expense.CategoryID, expense.Amount, expense.ExpenseDate, expense.Description,
		expense.UpdatedAt, expense.ID)
	if err != nil {
		return fmt.Errorf("expenseRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *expenseRepo) Delete(ctx context.Context, expenseID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = $1", expenseID)
	if err != nil {
		return fmt.Errorf("expenseRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
