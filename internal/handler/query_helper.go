package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/gyd-platform/department-api/pkg/errors"
)

// parseLimit reads the optional limit query parameter. Zero means unbounded.
func parseLimit(c *gin.Context) (int64, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 {
		return 0, appErrors.Clone(appErrors.ErrBadRequest, "limit must be a positive integer")
	}
	return limit, nil
}

// parseYear reads the optional year query parameter, nil when absent.
func parseYear(c *gin.Context) (*int, error) {
	raw := c.Query("year")
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrBadRequest, "year must be an integer")
	}
	return &year, nil
}

// bindPayload decodes a JSON object body. Field-level validation happens in
// the schema layer; this only rejects bodies that are not JSON objects.
func bindPayload(c *gin.Context) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, appErrors.Clone(appErrors.ErrBadRequest, "request body must be a JSON object")
	}
	return payload, nil
}
