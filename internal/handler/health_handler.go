package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyd-platform/department-api/internal/dto"
	"github.com/gyd-platform/department-api/internal/schema"
	"github.com/gyd-platform/department-api/pkg/response"
)

type diagnosticService interface {
	Report(ctx context.Context) dto.DiagnosticReport
}

// HealthHandler exposes liveness, diagnostics and schema introspection.
type HealthHandler struct {
	diagnostics diagnosticService
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(diagnostics diagnosticService) *HealthHandler {
	return &HealthHandler{diagnostics: diagnostics}
}

// Root godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} object
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"message": "Gender & Youth Department API running"})
}

// Test godoc
// @Summary Store connectivity diagnostic
// @Tags Health
// @Produce json
// @Success 200 {object} dto.DiagnosticReport
// @Router /test [get]
func (h *HealthHandler) Test(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.diagnostics.Report(c.Request.Context()))
}

// Schema godoc
// @Summary Entity schema introspection
// @Tags Health
// @Produce json
// @Success 200 {object} object
// @Router /schema [get]
func (h *HealthHandler) Schema(c *gin.Context) {
	schemas := make(map[string]interface{}, 3)
	for name, def := range schema.All() {
		schemas[name] = def.JSONSchema()
	}
	response.JSON(c, http.StatusOK, schemas)
}
