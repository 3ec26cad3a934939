package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carline/internal/handler"
)

func setupHealthRouter(db *sqlx.DB) *gin.Engine {
	r := gin.New()
	healthH := handler.NewHealthHandler(db)
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)
	return r
}

func TestLiveness(t *testing.T) {
	r := setupHealthRouter(nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestReadiness_DatabaseUnreachable(t *testing.T) {
	// Open does not dial; the ping inside the handler fails against the
	// unroutable address.
	db, err := sqlx.Open("pgx", "postgres://carline:pw@127.0.0.1:1/carline?sslmode=disable")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	r := setupHealthRouter(db)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/readyz", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "DATABASE_UNAVAILABLE")
}
