package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"carline/internal/domain"
	"carline/internal/port"
)

// MockMaintenanceRepo is a mock implementation of port.MaintenanceRepository.
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, record *domain.Maintenance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Maintenance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Maintenance), args.Error(1)
}

func (m *MockMaintenanceRepo) ListByCar(ctx context.Context, carID uuid.UUID, filter port.RangeFilter) ([]domain.Maintenance, int, error) {
	args := m.Called(ctx, carID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Maintenance), args.Int(1), args.Error(2)
}

func (m *MockMaintenanceRepo) Update(ctx context.Context, record *domain.Maintenance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMaintenanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
