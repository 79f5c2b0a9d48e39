package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyd-platform/department-api/internal/dto"
	"github.com/gyd-platform/department-api/pkg/response"
)

type eventService interface {
	Create(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error)
	List(ctx context.Context, req dto.EventListRequest) ([]map[string]interface{}, error)
	Update(ctx context.Context, id string, payload map[string]interface{}) (map[string]interface{}, error)
	Delete(ctx context.Context, id string) error
}

// EventHandler exposes the /api/events endpoints.
type EventHandler struct {
	service eventService
}

// NewEventHandler constructs the handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// List godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param limit query int false "Maximum number of records"
// @Success 200 {array} object
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.service.List(c.Request.Context(), dto.EventListRequest{Limit: limit})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events)
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Router /api/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	event, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// Update godoc
// @Summary Partially update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} object
// @Router /api/events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	event, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} object
// @Router /api/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
