package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"carline/internal/domain"
	"carline/internal/port"
)

// MockExpenseRepo is a mock implementation of port.ExpenseRepository.
type MockExpenseRepo struct {
	mock.Mock
}

func (m *MockExpenseRepo) Create(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepo) GetByID(ctx context.Context, expenseID uuid.UUID) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepo) ListByCar(ctx context.Context, carID uuid.UUID, filter port.ExpenseFilter) ([]domain.Expense, int, error) {
	args := m.Called(ctx, carID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Expense), args.Int(1), args.Error(2)
}

func (m *MockExpenseRepo) ListByUser(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, filter port.ExpenseFilter) ([]domain.Expense, int, error) {
	args := m.Called(ctx, userID, carID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Expense), args.Int(1), args.Error(2)
}

func (m *MockExpenseRepo) ListForStats(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, from, to *time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, carID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepo) Update(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepo) Delete(ctx context.Context, expenseID uuid.UUID) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}
