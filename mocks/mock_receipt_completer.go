package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockReceiptCompleter is a mock implementation of port.ReceiptCompleter.
type MockReceiptCompleter struct {
	mock.Mock
}

func (m *MockReceiptCompleter) Complete(ctx context.Context, image string) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}
