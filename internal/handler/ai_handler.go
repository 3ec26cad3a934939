package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carline/internal/service"
)

// ProcessReceiptInput is the DTO for receipt scan requests. The car must
// belong to the authenticated user; the image is discarded after processing.
type ProcessReceiptInput struct {
	Image string    `json:"image" binding:"required"`
	CarID uuid.UUID `json:"car_id" binding:"required"`
}

// AIHandler handles receipt extraction endpoints.
type AIHandler struct {
	receiptService service.ReceiptService
	carService     service.CarService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(receiptService service.ReceiptService, carService service.CarService) *AIHandler {
	return &AIHandler{receiptService: receiptService, carService: carService}
}

// ProcessReceipt handles POST /api/v1/ai/process-receipt
func (h *AIHandler) ProcessReceipt(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var input ProcessReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.carService.VerifyOwnership(c.Request.Context(), userID, input.CarID); err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.receiptService.Process(c.Request.Context(), input.Image)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Health handles GET /api/v1/ai/health
func (h *AIHandler) Health(c *gin.Context) {
	RespondOK(c, h.receiptService.Health())
}
