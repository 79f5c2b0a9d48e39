package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyd-platform/department-api/internal/dto"
	"github.com/gyd-platform/department-api/pkg/response"
)

type exportService interface {
	Courses(ctx context.Context, req dto.CourseExportRequest) (*dto.ExportFile, error)
	Timetable(ctx context.Context, req dto.TimetableExportRequest) (*dto.ExportFile, error)
}

// ExportHandler serves CSV/PDF downloads of course and timetable listings.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Courses godoc
// @Summary Export courses as CSV or PDF
// @Tags Export
// @Param semester query string false "Semester (Fall, Spring, Summer)"
// @Param year query int false "Academic year"
// @Param format query string false "csv or pdf (default csv)"
// @Success 200
// @Router /api/courses/export [get]
func (h *ExportHandler) Courses(c *gin.Context) {
	listReq, err := courseListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := h.service.Courses(c.Request.Context(), dto.CourseExportRequest{
		CourseListRequest: *listReq,
		Format:            c.Query("format"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	writeFile(c, file)
}

// Timetable godoc
// @Summary Export the timetable as CSV or PDF
// @Tags Export
// @Param semester query string false "Semester (Fall, Spring, Summer)"
// @Param year query int false "Academic year"
// @Param day query string false "Day of week (Monday..Saturday)"
// @Param format query string false "csv or pdf (default csv)"
// @Success 200
// @Router /api/timetable/export [get]
func (h *ExportHandler) Timetable(c *gin.Context) {
	listReq, err := timetableListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := h.service.Timetable(c.Request.Context(), dto.TimetableExportRequest{
		TimetableListRequest: *listReq,
		Format:               c.Query("format"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	writeFile(c, file)
}

func writeFile(c *gin.Context, file *dto.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Bytes)
}
