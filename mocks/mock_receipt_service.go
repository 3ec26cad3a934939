package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"carline/internal/receipt"
	"carline/internal/service"
)

// MockReceiptService is a mock implementation of service.ReceiptService.
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) Process(ctx context.Context, image string) (*receipt.Result, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Result), args.Error(1)
}

func (m *MockReceiptService) Health() service.HealthStatus {
	args := m.Called()
	return args.Get(0).(service.HealthStatus)
}
