package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carline/internal/service"
)

// CarHandler handles car CRUD endpoints.
type CarHandler struct {
	carService service.CarService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(carService service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

// Create handles POST /api/v1/cars
func (h *CarHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var input service.CreateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	car, err := h.carService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, car)
}

// List handles GET /api/v1/cars
func (h *CarHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	cars, total, err := h.carService.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, cars, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/cars/:carId
func (h *CarHandler) Get(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	carID, err := parsePathUUID(c, "carId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	car, err := h.carService.Get(c.Request.Context(), userID, carID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, car)
}

// Update handles PUT /api/v1/cars/:carId
func (h *CarHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	carID, err := parsePathUUID(c, "carId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var input service.UpdateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	car, err := h.carService.Update(c.Request.Context(), userID, carID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, car)
}

// Delete handles DELETE /api/v1/cars/:carId
func (h *CarHandler) Delete(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	carID, err := parsePathUUID(c, "carId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.carService.Delete(c.Request.Context(), userID, carID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "car deleted"})
}
