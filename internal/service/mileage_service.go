package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carline/internal/domain"
	"carline/internal/port"
)

// CreateMileageInput is the DTO for odometer record creation.
type CreateMileageInput struct {
	Value      int       `json:"value" binding:"required,min=0"`
	RecordedAt time.Time `json:"recorded_at" binding:"required"`
	Comment    *string   `json:"comment"`
}

// UpdateMileageInput is the DTO for odometer record updates. Nil fields are
// left unchanged.
type UpdateMileageInput struct {
	Value      *int       `json:"value"`
	RecordedAt *time.Time `json:"recorded_at"`
	Comment    *string    `json:"comment"`
}

// MileageService defines odometer record CRUD. Car-scoped operations assume
// ownership was already verified.
type MileageService interface {
	Create(ctx context.Context, carID uuid.UUID, input CreateMileageInput) (*domain.Mileage, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Mileage, error)
	ListByCar(ctx context.Context, carID uuid.UUID, offset, limit int) ([]domain.Mileage, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateMileageInput) (*domain.Mileage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mileageService struct {
	repo port.MileageRepository
}

// NewMileageService creates a new MileageService implementation.
func NewMileageService(repo port.MileageRepository) MileageService {
	return &mileageService{repo: repo}
}

func (s *mileageService) Create(ctx context.Context, carID uuid.UUID, input CreateMileageInput) (*domain.Mileage, error) {
	m := &domain.Mileage{
		CarID:      carID,
		Value:      input.Value,
		RecordedAt: input.RecordedAt,
		Comment:    input.Comment,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *mileageService) Get(ctx context.Context, id uuid.UUID) (*domain.Mileage, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *mileageService) ListByCar(ctx context.Context, carID uuid.UUID, offset, limit int) ([]domain.Mileage, int, error) {
	return s.repo.ListByCar(ctx, carID, offset, limit)
}

func (s *mileageService) Update(ctx context.Context, id uuid.UUID, input UpdateMileageInput) (*domain.Mileage, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Value != nil {
		m.Value = *input.Value
	}
	if input.RecordedAt != nil {
		m.RecordedAt = *input.RecordedAt
	}
	if input.Comment != nil {
		m.Comment = input.Comment
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *mileageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
