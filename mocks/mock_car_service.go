package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"carline/internal/domain"
	"carline/internal/service"
)

// MockCarService is a mock implementation of service.CarService.
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) Create(ctx context.Context, userID uuid.UUID, input service.CreateCarInput) (*domain.Car, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarService) Get(ctx context.Context, userID, carID uuid.UUID) (*domain.Car, error) {
	args := m.Called(ctx, userID, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Car, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Car), args.Int(1), args.Error(2)
}

func (m *MockCarService) Update(ctx context.Context, userID, carID uuid.UUID, input service.UpdateCarInput) (*domain.Car, error) {
	args := m.Called(ctx, userID, carID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarService) Delete(ctx context.Context, userID, carID uuid.UUID) error {
	args := m.Called(ctx, userID, carID)
	return args.Error(0)
}

func (m *MockCarService) VerifyOwnership(ctx context.Context, userID, carID uuid.UUID) error {
	args := m.Called(ctx, userID, carID)
	return args.Error(0)
}
