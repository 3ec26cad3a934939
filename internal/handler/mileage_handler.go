package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carline/internal/service"
)

// MileageHandler handles odometer record endpoints nested under a car.
type MileageHandler struct {
	mileageService service.MileageService
}

// NewMileageHandler creates a new MileageHandler.
func NewMileageHandler(mileageService service.MileageService) *MileageHandler {
	return &MileageHandler{mileageService: mileageService}
}

// Create handles POST /api/v1/cars/:carId/mileage
func (h *MileageHandler) Create(c *gin.Context) {
	carID, ok := carIDFromContext(c)
	if !ok {
		return
	}

	var input service.CreateMileageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	m, err := h.mileageService.Create(c.Request.Context(), carID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, m)
}

// List handles GET /api/v1/cars/:carId/mileage
func (h *MileageHandler) List(c *gin.Context) {
	carID, ok := carIDFromContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	records, total, err := h.mileageService.ListByCar(c.Request.Context(), carID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/cars/:carId/mileage/:recordId
func (h *MileageHandler) Update(c *gin.Context) {
	carID, ok := carIDFromContext(c)
	if !ok {
		return
	}

	recordID, err := parsePathUUID(c, "recordId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	existing, err := h.mileageService.Get(c.Request.Context(), recordID)
	if err != nil || existing.CarID != carID {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "mileage record not found")
		return
	}

	var input service.UpdateMileageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	m, err := h.mileageService.Update(c.Request.Context(), recordID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, m)
}

// Delete handles DELETE /api/v1/cars/:carId/mileage/:recordId
func (h *MileageHandler) Delete(c *gin.Context) {
	carID, ok := carIDFromContext(c)
	if !ok {
		return
	}

	recordID, err := parsePathUUID(c, "recordId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	existing, err := h.mileageService.Get(c.Request.Context(), recordID)
	if err != nil || existing.CarID != carID {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "mileage record not found")
		return
	}

	if err := h.mileageService.Delete(c.Request.Context(), recordID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "mileage record deleted"})
}
