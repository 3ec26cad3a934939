package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carline/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// RefreshTokenRepository defines the contract for stored refresh tokens.
// Tokens are single-use: a presented token is deleted on rotation.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

// CarRepository defines the contract for car persistence.
// All query methods include userID to enforce ownership at the data layer.
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, userID, carID uuid.UUID) (*domain.Car, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Car, int, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, userID, carID uuid.UUID) error
	IsOwnedBy(ctx context.Context, carID, userID uuid.UUID) (bool, error)
}

// ExpenseFilter narrows expense list queries.
type ExpenseFilter struct {
	CategoryID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Offset     int
	Limit      int
}

// ExpenseCategoryRepository defines the contract for the seeded category table.
type ExpenseCategoryRepository interface {
	Create(ctx context.Context, category *domain.ExpenseCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExpenseCategory, error)
	GetByName(ctx context.Context, name string) (*domain.ExpenseCategory, error)
	List(ctx context.Context) ([]domain.ExpenseCategory, error)
}

// ExpenseRepository defines the contract for expense persistence.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, expenseID uuid.UUID) (*domain.Expense, error)
	ListByCar(ctx context.Context, carID uuid.UUID, filter ExpenseFilter) ([]domain.Expense, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, filter ExpenseFilter) ([]domain.Expense, int, error)
	// ListForStats returns the unpaginated expense set (category joined) for
	// aggregation and export.
	ListForStats(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, from, to *time.Time) ([]domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, expenseID uuid.UUID) error
}

// RangeFilter narrows date-ranged list queries.
type RangeFilter struct {
	From   *time.Time
	To     *time.Time
	Offset int
	Limit  int
}

// MaintenanceRepository defines the contract for maintenance records.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Maintenance, error)
	ListByCar(ctx context.Context, carID uuid.UUID, filter RangeFilter) ([]domain.Maintenance, int, error)
	Update(ctx context.Context, m *domain.Maintenance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MileageRepository defines the contract for odometer records.
type MileageRepository interface {
	Create(ctx context.Context, m *domain.Mileage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Mileage, error)
	ListByCar(ctx context.Context, carID uuid.UUID, offset, limit int) ([]domain.Mileage, int, error)
	Update(ctx context.Context, m *domain.Mileage) error
	Delete(ctx context.Context, id uuid.UUID) error
}
