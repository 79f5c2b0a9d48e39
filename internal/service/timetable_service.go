package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/gyd-platform/department-api/internal/dto"
	"github.com/gyd-platform/department-api/internal/schema"
	appErrors "github.com/gyd-platform/department-api/pkg/errors"
)

// TimetableService manages the timetable collection.
type TimetableService struct {
	resourceService
	validator *validator.Validate
}

// NewTimetableService constructs a TimetableService.
func NewTimetableService(store documentStore, validate *validator.Validate, logger *zap.Logger) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	return &TimetableService{
		resourceService: newResourceService(schema.Timetable, "timetable slot", store, logger),
		validator:       validate,
	}
}

// Create validates and persists a new timetable slot.
func (s *TimetableService) Create(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	return s.create(ctx, payload)
}

// List returns timetable slots matching the optional semester/year/day filter.
func (s *TimetableService) List(ctx context.Context, req dto.TimetableListRequest) ([]map[string]interface{}, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "limit must be a positive integer")
	}
	return s.list(ctx, timetableFilter(req), req.Limit)
}

// Update applies a partial payload to an existing timetable slot.
func (s *TimetableService) Update(ctx context.Context, id string, payload map[string]interface{}) (map[string]interface{}, error) {
	return s.update(ctx, id, payload)
}

// Delete removes a timetable slot by identifier.
func (s *TimetableService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

func timetableFilter(req dto.TimetableListRequest) bson.M {
	filter := bson.M{}
	if req.Semester != "" {
		filter["semester"] = req.Semester
	}
	if req.Year != nil {
		filter["year"] = *req.Year
	}
	if req.Day != "" {
		filter["day"] = req.Day
	}
	return filter
}
