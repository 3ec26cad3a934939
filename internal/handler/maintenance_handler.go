package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carline/internal/port"
	"carline/internal/service"
)

// MaintenanceHandler handles maintenance record endpoints nested under a car.
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(maintenanceService service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// Create handles POST /api/v1/cars/:carId/maintenance
func (h *MaintenanceHandler) Create(c *gin.Context) {
	carID, ok := carIDFromContext(c)
	if !ok {
		return
	}

	var input service.CreateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	m, err := h.maintenanceService.Create(c.Request.Context(), carID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, m)
}

// List handles GET /api/v1/cars/:carId/maintenance
func (h *MaintenanceHandler) List(c *gin.Context) {
	carID, ok := carIDFromContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	filter := port.RangeFilter{From: from, To: to, Offset: offset, Limit: limit}
	records, total, err := h.maintenanceService.ListByCar(c.Request.Context(), carID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/cars/:carId/maintenance/:recordId
func (h *MaintenanceHandler) Update(c *gin.Context) {
	carID, ok := carIDFromContext(c)
	if !ok {
		return
	}

	recordID, err := parsePathUUID(c, "recordId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	existing, err := h.maintenanceService.Get(c.Request.Context(), recordID)
	if err != nil || existing.CarID != carID {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "maintenance record not found")
		return
	}

	var input service.UpdateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	m, err := h.maintenanceService.Update(c.Request.Context(), recordID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, m)
}

// Delete handles DELETE /api/v1/cars/:carId/maintenance/:recordId
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	carID, ok := carIDFromContext(c)
	if !ok {
		return
	}

	recordID, err := parsePathUUID(c, "recordId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	existing, err := h.maintenanceService.Get(c.Request.Context(), recordID)
	if err != nil || existing.CarID != carID {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "maintenance record not found")
		return
	}

	if err := h.maintenanceService.Delete(c.Request.Context(), recordID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "maintenance record deleted"})
}
