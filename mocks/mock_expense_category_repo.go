package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"carline/internal/domain"
)

// MockExpenseCategoryRepo is a mock implementation of port.ExpenseCategoryRepository.
type MockExpenseCategoryRepo struct {
	mock.Mock
}

func (m *MockExpenseCategoryRepo) Create(ctx context.Context, category *domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockExpenseCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepo) GetByName(ctx context.Context, name string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepo) List(ctx context.Context) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}
