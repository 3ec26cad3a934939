package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"carline/internal/domain"
)

// MockCarRepo is a mock implementation of port.CarRepository.
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepo) GetByID(ctx context.Context, userID, carID uuid.UUID) (*domain.Car, error) {
	args := m.Called(ctx, userID, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Car, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Car), args.Int(1), args.Error(2)
}

func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepo) Delete(ctx context.Context, userID, carID uuid.UUID) error {
	args := m.Called(ctx, userID, carID)
	return args.Error(0)
}

func (m *MockCarRepo) IsOwnedBy(ctx context.Context, carID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, carID, userID)
	return args.Bool(0), args.Error(1)
}
