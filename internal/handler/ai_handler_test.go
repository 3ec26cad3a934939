package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carline/internal/domain"
	"carline/internal/handler"
	"carline/internal/middleware"
	"carline/internal/receipt"
	"carline/internal/service"
	"carline/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuth injects a fixed user into the context, standing in for the JWT
// middleware.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, userID)
		c.Next()
	}
}

func setupAIRouter(userID uuid.UUID, receiptSvc service.ReceiptService, carSvc service.CarService) *gin.Engine {
	r := gin.New()
	aiH := handler.NewAIHandler(receiptSvc, carSvc)
	ai := r.Group("/api/v1/ai")
	ai.Use(fakeAuth(userID))
	ai.POST("/process-receipt", aiH.ProcessReceipt)
	ai.GET("/health", aiH.Health)
	return r
}

func TestProcessReceipt_Success(t *testing.T) {
	userID := uuid.New()
	carID := uuid.New()
	merchant := "OKKO"
	result := &receipt.Result{
		Amount:     350.75,
		Date:       "2026-08-15",
		Merchant:   &merchant,
		Category:   domain.ReceiptCategoryFuel,
		Confidence: 1.0,
	}

	receiptSvc := new(mocks.MockReceiptService)
	receiptSvc.On("Process", mock.Anything, "img-payload").Return(result, nil)
	carSvc := new(mocks.MockCarService)
	carSvc.On("VerifyOwnership", mock.Anything, userID, carID).Return(nil)

	r := setupAIRouter(userID, receiptSvc, carSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ai/process-receipt",
		strings.NewReader(`{"image": "img-payload", "car_id": "`+carID.String()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    receipt.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 350.75, resp.Data.Amount)
	assert.Equal(t, "2026-08-15", resp.Data.Date)
	assert.False(t, resp.Data.NeedsReview)
	carSvc.AssertExpectations(t)
}

func TestProcessReceipt_InvalidImage(t *testing.T) {
	userID := uuid.New()
	receiptSvc := new(mocks.MockReceiptService)
	receiptSvc.On("Process", mock.Anything, "short").Return(nil, domain.ErrInvalidImage)
	carSvc := new(mocks.MockCarService)
	carSvc.On("VerifyOwnership", mock.Anything, userID, mock.Anything).Return(nil)

	r := setupAIRouter(userID, receiptSvc, carSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ai/process-receipt",
		strings.NewReader(`{"image": "short", "car_id": "`+uuid.New().String()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_IMAGE")
}

func TestProcessReceipt_ProcessingFailureIsOpaque(t *testing.T) {
	userID := uuid.New()
	receiptSvc := new(mocks.MockReceiptService)
	receiptSvc.On("Process", mock.Anything, mock.Anything).Return(nil, domain.ErrReceiptProcessing)
	carSvc := new(mocks.MockCarService)
	carSvc.On("VerifyOwnership", mock.Anything, userID, mock.Anything).Return(nil)

	r := setupAIRouter(userID, receiptSvc, carSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ai/process-receipt",
		strings.NewReader(`{"image": "whatever", "car_id": "`+uuid.New().String()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to process receipt")
	// No upstream detail leaks to the client.
	assert.NotContains(t, w.Body.String(), "openai")
	assert.NotContains(t, w.Body.String(), "parse")
}

func TestProcessReceipt_MissingImage(t *testing.T) {
	r := setupAIRouter(uuid.New(), new(mocks.MockReceiptService), new(mocks.MockCarService))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ai/process-receipt",
		strings.NewReader(`{"car_id": "`+uuid.New().String()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestProcessReceipt_MissingCarID(t *testing.T) {
	receiptSvc := new(mocks.MockReceiptService)
	carSvc := new(mocks.MockCarService)

	r := setupAIRouter(uuid.New(), receiptSvc, carSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ai/process-receipt",
		strings.NewReader(`{"image": "payload"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	carSvc.AssertNotCalled(t, "VerifyOwnership", mock.Anything, mock.Anything, mock.Anything)
	receiptSvc.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestProcessReceipt_ForeignCarRejected(t *testing.T) {
	userID := uuid.New()
	carID := uuid.New()

	carSvc := new(mocks.MockCarService)
	carSvc.On("VerifyOwnership", mock.Anything, userID, carID).Return(domain.ErrCarNotOwned)
	receiptSvc := new(mocks.MockReceiptService)

	r := setupAIRouter(userID, receiptSvc, carSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ai/process-receipt",
		strings.NewReader(`{"image": "payload", "car_id": "`+carID.String()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	receiptSvc.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestAIHealth(t *testing.T) {
	receiptSvc := new(mocks.MockReceiptService)
	receiptSvc.On("Health").Return(service.HealthStatus{Status: "not_configured", Configured: false})

	r := setupAIRouter(uuid.New(), receiptSvc, new(mocks.MockCarService))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ai/health", http.NoBody)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data service.HealthStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_configured", resp.Data.Status)
	assert.False(t, resp.Data.Configured)
}
