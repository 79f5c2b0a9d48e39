package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gyd-platform/department-api/internal/dto"
	"github.com/gyd-platform/department-api/internal/schema"
	appErrors "github.com/gyd-platform/department-api/pkg/errors"
)

// EventService manages the event collection.
type EventService struct {
	resourceService
	validator *validator.Validate
}

// NewEventService constructs an EventService.
func NewEventService(store documentStore, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	return &EventService{
		resourceService: newResourceService(schema.Event, "event", store, logger),
		validator:       validate,
	}
}

// Create validates and persists a new event.
func (s *EventService) Create(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	return s.create(ctx, payload)
}

// List returns events oldest first, capped by the optional limit.
func (s *EventService) List(ctx context.Context, req dto.EventListRequest) ([]map[string]interface{}, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "limit must be a positive integer")
	}
	return s.list(ctx, nil, req.Limit)
}

// Update applies a partial payload to an existing event.
func (s *EventService) Update(ctx context.Context, id string, payload map[string]interface{}) (map[string]interface{}, error) {
	return s.update(ctx, id, payload)
}

// Delete removes an event by identifier.
func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
