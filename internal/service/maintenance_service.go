package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carline/internal/domain"
	"carline/internal/port"
)

// CreateMaintenanceInput is the DTO for maintenance record creation.
type CreateMaintenanceInput struct {
	ServiceType      string    `json:"service_type" binding:"required"`
	MileageAtService int       `json:"mileage_at_service" binding:"min=0"`
	ServiceDate      time.Time `json:"service_date" binding:"required"`
	Cost             float64   `json:"cost" binding:"min=0"`
	Description      *string   `json:"description"`
}

// UpdateMaintenanceInput is the DTO for maintenance updates. Nil fields are
// left unchanged.
type UpdateMaintenanceInput struct {
	ServiceType      *string    `json:"service_type"`
	MileageAtService *int       `json:"mileage_at_service"`
	ServiceDate      *time.Time `json:"service_date"`
	Cost             *float64   `json:"cost"`
	Description      *string    `json:"description"`
}

// MaintenanceService defines maintenance record CRUD. Car-scoped operations
// assume ownership was already verified.
type MaintenanceService interface {
	Create(ctx context.Context, carID uuid.UUID, input CreateMaintenanceInput) (*domain.Maintenance, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Maintenance, error)
	ListByCar(ctx context.Context, carID uuid.UUID, filter port.RangeFilter) ([]domain.Maintenance, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateMaintenanceInput) (*domain.Maintenance, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type maintenanceService struct {
	repo port.MaintenanceRepository
}

// NewMaintenanceService creates a new MaintenanceService implementation.
func NewMaintenanceService(repo port.MaintenanceRepository) MaintenanceService {
	return &maintenanceService{repo: repo}
}

func (s *maintenanceService) Create(ctx context.Context, carID uuid.UUID, input CreateMaintenanceInput) (*domain.Maintenance, error) {
	m := &domain.Maintenance{
		CarID:            carID,
		ServiceType:      input.ServiceType,
		MileageAtService: input.MileageAtService,
		ServiceDate:      input.ServiceDate,
		Cost:             input.Cost,
		Description:      input.Description,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) Get(ctx context.Context, id uuid.UUID) (*domain.Maintenance, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *maintenanceService) ListByCar(ctx context.Context, carID uuid.UUID, filter port.RangeFilter) ([]domain.Maintenance, int, error) {
	return s.repo.ListByCar(ctx, carID, filter)
}

func (s *maintenanceService) Update(ctx context.Context, id uuid.UUID, input UpdateMaintenanceInput) (*domain.Maintenance, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ServiceType != nil {
		m.ServiceType = *input.ServiceType
	}
	if input.MileageAtService != nil {
		m.MileageAtService = *input.MileageAtService
	}
	if input.ServiceDate != nil {
		m.ServiceDate = *input.ServiceDate
	}
	if input.Cost != nil {
		m.Cost = *input.Cost
	}
	if input.Description != nil {
		m.Description = input.Description
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
