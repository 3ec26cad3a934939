package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"carline/internal/domain"
	"carline/internal/port"
)

// CreateExpenseInput is the DTO for expense creation.
type CreateExpenseInput struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	ExpenseDate time.Time `json:"expense_date" binding:"required"`
	Description *string   `json:"description"`
}

// UpdateExpenseInput is the DTO for expense updates. Nil fields are left
// unchanged.
type UpdateExpenseInput struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Amount      *float64   `json:"amount"`
	ExpenseDate *time.Time `json:"expense_date"`
	Description *string    `json:"description"`
}

// CategoryStat aggregates expenses for one category.
type CategoryStat struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CategoryIcon string    `json:"category_icon"`
	Total        float64   `json:"total"`
	Count        int       `json:"count"`
}

// MonthStat aggregates expenses for one calendar month.
type MonthStat struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// ExpenseStats is the aggregated view returned by Stats.
type ExpenseStats struct {
	Total      float64        `json:"total"`
	Count      int            `json:"count"`
	ByCategory []CategoryStat `json:"by_category"`
	ByMonth    []MonthStat    `json:"by_month"`
}

// ExpenseService defines expense CRUD, category lookup, aggregation and
// export. Car-scoped operations assume ownership was already verified.
type ExpenseService interface {
	Create(ctx context.Context, carID uuid.UUID, input CreateExpenseInput) (*domain.Expense, error)
	Get(ctx context.Context, expenseID uuid.UUID) (*domain.Expense, error)
	ListByCar(ctx context.Context, carID uuid.UUID, filter port.ExpenseFilter) ([]domain.Expense, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, filter port.ExpenseFilter) ([]domain.Expense, int, error)
	Update(ctx context.Context, expenseID uuid.UUID, input UpdateExpenseInput) (*domain.Expense, error)
	Delete(ctx context.Context, expenseID uuid.UUID) error
	Categories(ctx context.Context) ([]domain.ExpenseCategory, error)
	Stats(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, from, to *time.Time) (*ExpenseStats, error)
	ListForExport(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, from, to *time.Time) ([]domain.Expense, error)
}

type expenseService struct {
	expenseRepo  port.ExpenseRepository
	categoryRepo port.ExpenseCategoryRepository
}

// NewExpenseService creates a new ExpenseService implementation.
func NewExpenseService(
	expenseRepo port.ExpenseRepository,
	categoryRepo port.ExpenseCategoryRepository,
) ExpenseService {
	return &expenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *expenseService) Create(ctx context.Context, carID uuid.UUID, input CreateExpenseInput) (*domain.Expense, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		CarID:       carID,
		CategoryID:  category.ID,
		Amount:      input.Amount,
		ExpenseDate: input.ExpenseDate,
		Description: input.Description,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	expense.CategoryName = category.Name
	expense.CategoryIcon = category.Icon
	return expense, nil
}

func (s *expenseService) Get(ctx context.Context, expenseID uuid.UUID) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(ctx, expenseID)
}

func (s *expenseService) ListByCar(ctx context.Context, carID uuid.UUID, filter port.ExpenseFilter) ([]domain.Expense, int, error) {
	return s.expenseRepo.ListByCar(ctx, carID, filter)
}

func (s *expenseService) ListByUser(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, filter port.ExpenseFilter) ([]domain.Expense, int, error) {
	return s.expenseRepo.ListByUser(ctx, userID, carID, filter)
}

func (s *expenseService) Update(ctx context.Context, expenseID uuid.UUID, input UpdateExpenseInput) (*domain.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		expense.CategoryID = category.ID
		expense.CategoryName = category.Name
		expense.CategoryIcon = category.Icon
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.Description != nil {
		expense.Description = input.Description
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, expenseID uuid.UUID) error {
	return s.expenseRepo.Delete(ctx, expenseID)
}

func (s *expenseService) Categories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *expenseService) Stats(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, from, to *time.Time) (*ExpenseStats, error) {
	expenses, err := s.expenseRepo.ListForStats(ctx, userID, carID, from, to)
	if err != nil {
		return nil, err
	}

	stats := &ExpenseStats{Count: len(expenses)}
	byCategory := make(map[uuid.UUID]*CategoryStat)
	byMonth := make(map[string]*MonthStat)

	for _, e := range expenses {
		stats.Total += e.Amount

		cs, ok := byCategory[e.CategoryID]
		if !ok {
			cs = &CategoryStat{
				CategoryID:   e.CategoryID,
				CategoryName: e.CategoryName,
				CategoryIcon: e.CategoryIcon,
			}
			byCategory[e.CategoryID] = cs
		}
		cs.Total += e.Amount
		cs.Count++

		month := e.ExpenseDate.Format("2006-01")
		ms, ok := byMonth[month]
		if !ok {
			ms = &MonthStat{Month: month}
			byMonth[month] = ms
		}
		ms.Total += e.Amount
		ms.Count++
	}

	for _, cs := range byCategory {
		stats.ByCategory = append(stats.ByCategory, *cs)
	}
	sort.Slice(stats.ByCategory, func(i, j int) bool {
		return stats.ByCategory[i].Total > stats.ByCategory[j].Total
	})

	for _, ms := range byMonth {
		stats.ByMonth = append(stats.ByMonth, *ms)
	}
	sort.Slice(stats.ByMonth, func(i, j int) bool {
		return stats.ByMonth[i].Month < stats.ByMonth[j].Month
	})

	return stats, nil
}

func (s *expenseService) ListForExport(ctx context.Context, userID uuid.UUID, carID *uuid.UUID, from, to *time.Time) ([]domain.Expense, error) {
	return s.expenseRepo.ListForStats(ctx, userID, carID, from, to)
}
