package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"carline/internal/domain"
)

// MockMileageRepo is a mock implementation of port.MileageRepository.
type MockMileageRepo struct {
	mock.Mock
}

func (m *MockMileageRepo) Create(ctx context.Context, record *domain.Mileage) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMileageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mileage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mileage), args.Error(1)
}

func (m *MockMileageRepo) ListByCar(ctx context.Context, carID uuid.UUID, offset, limit int) ([]domain.Mileage, int, error) {
	args := m.Called(ctx, carID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Mileage), args.Int(1), args.Error(2)
}

func (m *MockMileageRepo) Update(ctx context.Context, record *domain.Mileage) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMileageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
