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

// CourseService manages the course collection.
type CourseService struct {
	resourceService
	validator *validator.Validate
}

// NewCourseService constructs a CourseService.
func NewCourseService(store documentStore, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{
		resourceService: newResourceService(schema.Course, "course", store, logger),
		validator:       validate,
	}
}

// Create validates and persists a new course.
func (s *CourseService) Create(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	return s.create(ctx, payload)
}

// List returns courses matching the optional semester/year filter.
func (s *CourseService) List(ctx context.Context, req dto.CourseListRequest) ([]map[string]interface{}, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "limit must be a positive integer")
	}
	return s.list(ctx, courseFilter(req), req.Limit)
}

// Update applies a partial payload to an existing course.
func (s *CourseService) Update(ctx context.Context, id string, payload map[string]interface{}) (map[string]interface{}, error) {
	return s.update(ctx, id, payload)
}

// Delete removes a course by identifier.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

// courseFilter builds the exact-match query. Unset fields are omitted so an
// empty request matches everything.
func courseFilter(req dto.CourseListRequest) bson.M {
	filter := bson.M{}
	if req.Semester != "" {
		filter["semester"] = req.Semester
	}
	if req.Year != nil {
		filter["year"] = *req.Year
	}
	return filter
}
