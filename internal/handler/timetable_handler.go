package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyd-platform/department-api/internal/dto"
	"github.com/gyd-platform/department-api/pkg/response"
)

type timetableService interface {
	Create(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error)
	List(ctx context.Context, req dto.TimetableListRequest) ([]map[string]interface{}, error)
	Update(ctx context.Context, id string, payload map[string]interface{}) (map[string]interface{}, error)
	Delete(ctx context.Context, id string) error
}

// TimetableHandler exposes the /api/timetable endpoints.
type TimetableHandler struct {
	service timetableService
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(service timetableService) *TimetableHandler {
	return &TimetableHandler{service: service}
}

// List godoc
// @Summary List timetable slots
// @Tags Timetable
// @Produce json
// @Param semester query string false "Semester (Fall, Spring, Summer)"
// @Param year query int false "Academic year"
// @Param day query string false "Day of week (Monday..Saturday)"
// @Param limit query int false "Maximum number of records"
// @Success 200 {array} object
// @Router /api/timetable [get]
func (h *TimetableHandler) List(c *gin.Context) {
	req, err := timetableListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	slots, err := h.service.List(c.Request.Context(), *req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots)
}

// Create godoc
// @Summary Create a timetable slot
// @Tags Timetable
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Router /api/timetable [post]
func (h *TimetableHandler) Create(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	slot, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot)
}

// Update godoc
// @Summary Partially update a timetable slot
// @Tags Timetable
// @Accept json
// @Produce json
// @Param id path string true "Timetable slot ID"
// @Success 200 {object} object
// @Router /api/timetable/{id} [put]
func (h *TimetableHandler) Update(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	slot, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot)
}

// Delete godoc
// @Summary Delete a timetable slot
// @Tags Timetable
// @Produce json
// @Param id path string true "Timetable slot ID"
// @Success 200 {object} object
// @Router /api/timetable/{id} [delete]
func (h *TimetableHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func timetableListRequest(c *gin.Context) (*dto.TimetableListRequest, error) {
	limit, err := parseLimit(c)
	if err != nil {
		return nil, err
	}
	year, err := parseYear(c)
	if err != nil {
		return nil, err
	}
	return &dto.TimetableListRequest{
		Semester: c.Query("semester"),
		Year:     year,
		Day:      c.Query("day"),
		Limit:    limit,
	}, nil
}
