package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carline/internal/domain"
	"carline/internal/service"
	"carline/mocks"
)

func TestCarCreate_DefaultsActive(t *testing.T) {
	userID := uuid.New()

	carRepo := new(mocks.MockCarRepo)
	carRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Car) bool {
		return c.UserID == userID && c.IsActive
	})).Return(nil)

	svc := service.NewCarService(carRepo)
	car, err := svc.Create(context.Background(), userID, service.CreateCarInput{
		Make:  "Skoda",
		Model: "Octavia",
		Year:  2019,
	})
	require.NoError(t, err)
	assert.True(t, car.IsActive)
	carRepo.AssertExpectations(t)
}

func TestCarVerifyOwnership(t *testing.T) {
	userID := uuid.New()
	carID := uuid.New()

	carRepo := new(mocks.MockCarRepo)
	carRepo.On("IsOwnedBy", mock.Anything, carID, userID).Return(true, nil)

	svc := service.NewCarService(carRepo)
	assert.NoError(t, svc.VerifyOwnership(context.Background(), userID, carID))
}

func TestCarVerifyOwnership_ForeignCar(t *testing.T) {
	userID := uuid.New()
	carID := uuid.New()

	carRepo := new(mocks.MockCarRepo)
	carRepo.On("IsOwnedBy", mock.Anything, carID, userID).Return(false, nil)

	svc := service.NewCarService(carRepo)
	err := svc.VerifyOwnership(context.Background(), userID, carID)
	assert.ErrorIs(t, err, domain.ErrCarNotOwned)
}

func TestCarUpdate_PartialFields(t *testing.T) {
	userID := uuid.New()
	carID := uuid.New()
	existing := &domain.Car{ID: carID, UserID: userID, Make: "Skoda", Model: "Octavia", Year: 2019, IsActive: true}

	carRepo := new(mocks.MockCarRepo)
	carRepo.On("GetByID", mock.Anything, userID, carID).Return(existing, nil)
	carRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Car) bool {
		return c.Model == "Superb" && c.Make == "Skoda" && c.Year == 2019
	})).Return(nil)

	svc := service.NewCarService(carRepo)
	model := "Superb"
	car, err := svc.Update(context.Background(), userID, carID, service.UpdateCarInput{Model: &model})
	require.NoError(t, err)
	assert.Equal(t, "Superb", car.Model)
}

func TestCarGet_NotFound(t *testing.T) {
	userID := uuid.New()
	carID := uuid.New()

	carRepo := new(mocks.MockCarRepo)
	carRepo.On("GetByID", mock.Anything, userID, carID).Return(nil, domain.ErrNotFound)

	svc := service.NewCarService(carRepo)
	_, err := svc.Get(context.Background(), userID, carID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
