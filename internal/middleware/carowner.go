package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carline/internal/service"
)

const ContextKeyCarID = "car_id"

// CarOwner returns middleware for routes nested under /cars/:carId. It parses
// the path parameter, verifies the car belongs to the authenticated user, and
// injects the car ID into the context. A car owned by someone else yields the
// same 404 as a missing one.
func CarOwner(carService service.CarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := GetUserID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing user context"},
			})
			return
		}

		carID, err := uuid.Parse(c.Param("carId"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "VALIDATION_ERROR", "message": "invalid car id"},
			})
			return
		}

		if err := carService.VerifyOwnership(c.Request.Context(), userID, carID); err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "car not found"},
			})
			return
		}

		c.Set(ContextKeyCarID, carID)
		c.Next()
	}
}

// GetCarID extracts the verified car ID from the Gin context.
func GetCarID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(ContextKeyCarID)
	if !exists {
		return uuid.Nil, false
	}
	return val.(uuid.UUID), true
}
