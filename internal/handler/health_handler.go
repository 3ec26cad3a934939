package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

const readinessPingTimeout = 2 * time.Second

// HealthHandler handles process health endpoints.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	RespondOK(c, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. Ready means the database answers a ping
// within a short deadline.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "database not reachable")
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}
