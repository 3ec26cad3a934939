package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carline/internal/domain"
	"carline/internal/service"
	"carline/mocks"
)

func TestExpenseCreate_ResolvesCategory(t *testing.T) {
	carID := uuid.New()
	category := &domain.ExpenseCategory{ID: uuid.New(), Name: "Паливо", Icon: "fuel"}

	expenseRepo := new(mocks.MockExpenseRepo)
	categoryRepo := new(mocks.MockExpenseCategoryRepo)
	categoryRepo.On("GetByID", mock.Anything, category.ID).Return(category, nil)
	expenseRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Expense) bool {
		return e.CarID == carID && e.CategoryID == category.ID && e.Amount == 350.75
	})).Return(nil)

	svc := service.NewExpenseService(expenseRepo, categoryRepo)
	expense, err := svc.Create(context.Background(), carID, service.CreateExpenseInput{
		CategoryID:  category.ID,
		Amount:      350.75,
		ExpenseDate: time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Паливо", expense.CategoryName)
	assert.Equal(t, "fuel", expense.CategoryIcon)
	expenseRepo.AssertExpectations(t)
}

func TestExpenseCreate_UnknownCategory(t *testing.T) {
	categoryID := uuid.New()

	expenseRepo := new(mocks.MockExpenseRepo)
	categoryRepo := new(mocks.MockExpenseCategoryRepo)
	categoryRepo.On("GetByID", mock.Anything, categoryID).Return(nil, domain.ErrNotFound)

	svc := service.NewExpenseService(expenseRepo, categoryRepo)
	_, err := svc.Create(context.Background(), uuid.New(), service.CreateExpenseInput{
		CategoryID:  categoryID,
		Amount:      10,
		ExpenseDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	expenseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExpenseStats_Aggregation(t *testing.T) {
	userID := uuid.New()
	fuelID := uuid.New()
	repairID := uuid.New()

	date := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}

	expenses := []domain.Expense{
		{CategoryID: fuelID, CategoryName: "Паливо", Amount: 100, ExpenseDate: date("2026-07-10")},
		{CategoryID: fuelID, CategoryName: "Паливо", Amount: 200, ExpenseDate: date("2026-08-02")},
		{CategoryID: repairID, CategoryName: "Ремонт", Amount: 50, ExpenseDate: date("2026-08-20")},
	}

	expenseRepo := new(mocks.MockExpenseRepo)
	expenseRepo.On("ListForStats", mock.Anything, userID, (*uuid.UUID)(nil), (*time.Time)(nil), (*time.Time)(nil)).
		Return(expenses, nil)

	svc := service.NewExpenseService(expenseRepo, new(mocks.MockExpenseCategoryRepo))
	stats, err := svc.Stats(context.Background(), userID, nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 350.0, stats.Total)
	assert.Equal(t, 3, stats.Count)

	require.Len(t, stats.ByCategory, 2)
	// Sorted by total descending.
	assert.Equal(t, fuelID, stats.ByCategory[0].CategoryID)
	assert.Equal(t, 300.0, stats.ByCategory[0].Total)
	assert.Equal(t, 2, stats.ByCategory[0].Count)
	assert.Equal(t, repairID, stats.ByCategory[1].CategoryID)

	require.Len(t, stats.ByMonth, 2)
	// Sorted by month ascending.
	assert.Equal(t, "2026-07", stats.ByMonth[0].Month)
	assert.Equal(t, 100.0, stats.ByMonth[0].Total)
	assert.Equal(t, "2026-08", stats.ByMonth[1].Month)
	assert.Equal(t, 250.0, stats.ByMonth[1].Total)
	assert.Equal(t, 2, stats.ByMonth[1].Count)
}

func TestExpenseStats_Empty(t *testing.T) {
	userID := uuid.New()
	expenseRepo := new(mocks.MockExpenseRepo)
	expenseRepo.On("ListForStats", mock.Anything, userID, (*uuid.UUID)(nil), (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Expense{}, nil)

	svc := service.NewExpenseService(expenseRepo, new(mocks.MockExpenseCategoryRepo))
	stats, err := svc.Stats(context.Background(), userID, nil, nil, nil)
	require.NoError(t, err)

	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Count)
	assert.Empty(t, stats.ByCategory)
	assert.Empty(t, stats.ByMonth)
}

func TestExpenseUpdate_PartialFields(t *testing.T) {
	expenseID := uuid.New()
	existing := &domain.Expense{
		ID:          expenseID,
		CarID:       uuid.New(),
		CategoryID:  uuid.New(),
		Amount:      100,
		ExpenseDate: time.Now(),
	}

	expenseRepo := new(mocks.MockExpenseRepo)
	expenseRepo.On("GetByID", mock.Anything, expenseID).Return(existing, nil)
	expenseRepo.On("Update", mock.Anything, mock.MatchedBy(func(e *domain.Expense) bool {
		return e.Amount == 250 && e.CategoryID == existing.CategoryID
	})).Return(nil)

	svc := service.NewExpenseService(expenseRepo, new(mocks.MockExpenseCategoryRepo))
	amount := 250.0
	updated, err := svc.Update(context.Background(), expenseID, service.UpdateExpenseInput{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.Amount)
	expenseRepo.AssertExpectations(t)
}
