package service

import (
	"context"

	"github.com/google/uuid"

	"carline/internal/domain"
	"carline/internal/port"
)

// CreateCarInput is the DTO for car creation.
type CreateCarInput struct {
	Make           string `json:"make" binding:"required"`
	Model          string `json:"model" binding:"required"`
	Year           int    `json:"year" binding:"required,min=1900"`
	InitialMileage int    `json:"initial_mileage" binding:"min=0"`
}

// UpdateCarInput is the DTO for car updates. Nil fields are left unchanged.
type UpdateCarInput struct {
	Make           *string `json:"make"`
	Model          *string `json:"model"`
	Year           *int    `json:"year"`
	InitialMileage *int    `json:"initial_mileage"`
	IsActive       *bool   `json:"is_active"`
}

// CarService defines car CRUD scoped to the owning user. A car belonging to
// another user is indistinguishable from a missing one.
type CarService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateCarInput) (*domain.Car, error)
	Get(ctx context.Context, userID, carID uuid.UUID) (*domain.Car, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Car, int, error)
	Update(ctx context.Context, userID, carID uuid.UUID, input UpdateCarInput) (*domain.Car, error)
	Delete(ctx context.Context, userID, carID uuid.UUID) error
	VerifyOwnership(ctx context.Context, userID, carID uuid.UUID) error
}

type carService struct {
	carRepo port.CarRepository
}

// NewCarService creates a new CarService implementation.
func NewCarService(carRepo port.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) Create(ctx context.Context, userID uuid.UUID, input CreateCarInput) (*domain.Car, error) {
	car := &domain.Car{
		UserID:         userID,
		Make:           input.Make,
		Model:          input.Model,
		Year:           input.Year,
		InitialMileage: input.InitialMileage,
		IsActive:       true,
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) Get(ctx context.Context, userID, carID uuid.UUID) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, userID, carID)
}

func (s *carService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Car, int, error) {
	return s.carRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *carService) Update(ctx context.Context, userID, carID uuid.UUID, input UpdateCarInput) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, userID, carID)
	if err != nil {
		return nil, err
	}

	if input.Make != nil {
		car.Make = *input.Make
	}
	if input.Model != nil {
		car.Model = *input.Model
	}
	if input.Year != nil {
		car.Year = *input.Year
	}
	if input.InitialMileage != nil {
		car.InitialMileage = *input.InitialMileage
	}
	if input.IsActive != nil {
		car.IsActive = *input.IsActive
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) Delete(ctx context.Context, userID, carID uuid.UUID) error {
	return s.carRepo.Delete(ctx, userID, carID)
}

func (s *carService) VerifyOwnership(ctx context.Context, userID, carID uuid.UUID) error {
	owned, err := s.carRepo.IsOwnedBy(ctx, carID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return domain.ErrCarNotOwned
	}
	return nil
}
