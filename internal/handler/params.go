package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parsePagination extracts offset and limit from query params with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// parseDateRange extracts optional from/to query params (YYYY-MM-DD).
func parseDateRange(c *gin.Context) (from, to *time.Time, err error) {
	if fromStr := c.Query("from"); fromStr != "" {
		t, perr := time.Parse("2006-01-02", fromStr)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
		}
		from = &t
	}
	if toStr := c.Query("to"); toStr != "" {
		t, perr := time.Parse("2006-01-02", toStr)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
		}
		to = &t
	}
	return from, to, nil
}

// parseOptionalUUID extracts an optional UUID query param.
func parseOptionalUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid '%s': must be a valid UUID", name)
	}
	return &id, nil
}

// parsePathUUID extracts a required UUID path param.
func parsePathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid '%s': must be a valid UUID", name)
	}
	return id, nil
}
