package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyd-platform/department-api/internal/dto"
	"github.com/gyd-platform/department-api/pkg/response"
)

type courseService interface {
	Create(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error)
	List(ctx context.Context, req dto.CourseListRequest) ([]map[string]interface{}, error)
	Update(ctx context.Context, id string, payload map[string]interface{}) (map[string]interface{}, error)
	Delete(ctx context.Context, id string) error
}

// CourseHandler exposes the /api/courses endpoints.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(service courseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param semester query string false "Semester (Fall, Spring, Summer)"
// @Param year query int false "Academic year"
// @Param limit query int false "Maximum number of records"
// @Success 200 {array} object
// @Router /api/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	req, err := courseListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	courses, err := h.service.List(c.Request.Context(), *req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Create godoc
// @Summary Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Router /api/courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	course, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Update godoc
// @Summary Partially update a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} object
// @Router /api/courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	course, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Delete godoc
// @Summary Delete a course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} object
// @Router /api/courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func courseListRequest(c *gin.Context) (*dto.CourseListRequest, error) {
	limit, err := parseLimit(c)
	if err != nil {
		return nil, err
	}
	year, err := parseYear(c)
	if err != nil {
		return nil, err
	}
	return &dto.CourseListRequest{
		Semester: c.Query("semester"),
		Year:     year,
		Limit:    limit,
	}, nil
}
