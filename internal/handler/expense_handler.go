package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carline/internal/domain"
	"carline/internal/export"
	"carline/internal/port"
	"carline/internal/service"
)

// ExpenseHandler handles expense endpoints, both car-scoped and user-wide.
type ExpenseHandler struct {
	expenseService service.ExpenseService
	carService     service.CarService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService service.ExpenseService, carService service.CarService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, carService: carService}
}

// Create handles POST /api/v1/cars/:carId/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	carID, ok := carIDFromContext(c)
	if !ok {
		return
	}

	var input service.CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), carID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, expense)
}

// ListByCar handles GET /api/v1/cars/:carId/expenses
func (h *ExpenseHandler) ListByCar(c *gin.Context) {
	carID, ok := carIDFromContext(c)
	if !ok {
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	expenses, total, err := h.expenseService.ListByCar(c.Request.Context(), carID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, expenses, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// List handles GET /api/v1/expenses (all cars of the authenticated user,
// optionally narrowed with ?car_id=).
func (h *ExpenseHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	carID, err := parseOptionalUUID(c, "car_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	expenses, total, err := h.expenseService.ListByUser(c.Request.Context(), userID, carID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, expenses, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// Get handles GET /api/v1/expenses/:expenseId
func (h *ExpenseHandler) Get(c *gin.Context) {
	expense, ok := h.ownedExpense(c)
	if !ok {
		return
	}
	RespondOK(c, expense)
}

// Update handles PUT /api/v1/expenses/:expenseId
func (h *ExpenseHandler) Update(c *gin.Context) {
	expense, ok := h.ownedExpense(c)
	if !ok {
		return
	}

	var input service.UpdateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updated, err := h.expenseService.Update(c.Request.Context(), expense.ID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, updated)
}

// Delete handles DELETE /api/v1/expenses/:expenseId
func (h *ExpenseHandler) Delete(c *gin.Context) {
	expense, ok := h.ownedExpense(c)
	if !ok {
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), expense.ID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "expense deleted"})
}

// Categories handles GET /api/v1/expenses/categories
func (h *ExpenseHandler) Categories(c *gin.Context) {
	categories, err := h.expenseService.Categories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, categories)
}

// Stats handles GET /api/v1/expenses/stats
func (h *ExpenseHandler) Stats(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	carID, err := parseOptionalUUID(c, "car_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	stats, err := h.expenseService.Stats(c.Request.Context(), userID, carID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}

// Export handles GET /api/v1/expenses/export?format=csv|xlsx
func (h *ExpenseHandler) Export(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	format := domain.ExportFormat(c.DefaultQuery("format", string(domain.ExportFormatCSV)))
	if !format.IsValid() {
		HandleError(c, domain.ErrInvalidExportFormat)
		return
	}

	carID, err := parseOptionalUUID(c, "car_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	expenses, err := h.expenseService.ListForExport(c.Request.Context(), userID, carID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("expenses_%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	switch format {
	case domain.ExportFormatCSV:
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Writer.WriteHeader(http.StatusOK)
		_, _ = c.Writer.Write(export.BOM)
		w := export.NewCSVWriter(c.Writer)
		if err := w.WriteHeader(); err != nil {
			return
		}
		if err := w.WriteExpenses(expenses); err != nil {
			return
		}
		w.Flush()
	case domain.ExportFormatXLSX:
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Writer.WriteHeader(http.StatusOK)
		_ = export.WriteXLSX(c.Writer, expenses)
	}
}

// ownedExpense loads an expense by path param and verifies the owning car
// belongs to the authenticated user. A foreign expense yields the same 404
// as a missing one.
func (h *ExpenseHandler) ownedExpense(c *gin.Context) (*domain.Expense, bool) {
	userID, ok := authUserID(c)
	if !ok {
		return nil, false
	}

	expenseID, err := parsePathUUID(c, "expenseId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return nil, false
	}

	expense, err := h.expenseService.Get(c.Request.Context(), expenseID)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}

	if err := h.carService.VerifyOwnership(c.Request.Context(), userID, expense.CarID); err != nil {
		HandleError(c, domain.ErrNotFound)
		return nil, false
	}

	return expense, true
}

func parseExpenseFilter(c *gin.Context) (port.ExpenseFilter, error) {
	offset, limit := parsePagination(c)
	filter := port.ExpenseFilter{Offset: offset, Limit: limit}

	categoryID, err := parseOptionalUUID(c, "category_id")
	if err != nil {
		return filter, err
	}
	filter.CategoryID = categoryID

	from, to, err := parseDateRange(c)
	if err != nil {
		return filter, err
	}
	filter.From = from
	filter.To = to
	return filter, nil
}
