package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/gyd-platform/department-api/internal/dto"
	"github.com/gyd-platform/department-api/internal/schema"
	appErrors "github.com/gyd-platform/department-api/pkg/errors"
	"github.com/gyd-platform/department-api/pkg/export"
)

type courseLister interface {
	List(ctx context.Context, req dto.CourseListRequest) ([]map[string]interface{}, error)
}

type timetableLister interface {
	List(ctx context.Context, req dto.TimetableListRequest) ([]map[string]interface{}, error)
}

// ExportService renders course and timetable listings as downloadable CSV or
// PDF tables, applying the same filters as the list endpoints.
type ExportService struct {
	courses   courseLister
	timetable timetableLister
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
}

// NewExportService constructs an ExportService.
func NewExportService(courses courseLister, timetable timetableLister, validate *validator.Validate) *ExportService {
	if validate == nil {
		validate = validator.New()
	}
	return &ExportService{
		courses:   courses,
		timetable: timetable,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		validator: validate,
	}
}

// Courses exports the filtered course listing.
func (s *ExportService) Courses(ctx context.Context, req dto.CourseExportRequest) (*dto.ExportFile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	records, err := s.courses.List(ctx, req.CourseListRequest)
	if err != nil {
		return nil, err
	}
	return s.render(schema.Course, records, req.Format)
}

// Timetable exports the filtered timetable listing.
func (s *ExportService) Timetable(ctx context.Context, req dto.TimetableExportRequest) (*dto.ExportFile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	records, err := s.timetable.List(ctx, req.TimetableListRequest)
	if err != nil {
		return nil, err
	}
	return s.render(schema.Timetable, records, req.Format)
}

func (s *ExportService) render(def schema.Definition, records []map[string]interface{}, format string) (*dto.ExportFile, error) {
	if format == "" {
		format = dto.ExportFormatCSV
	}

	data := buildDataset(def, records)

	var (
		raw         []byte
		contentType string
		err         error
	)
	switch format {
	case dto.ExportFormatPDF:
		raw, err = s.pdf.Render(data, def.Title+" export")
		contentType = "application/pdf"
	default:
		raw, err = s.csv.Render(data)
		contentType = "text/csv"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &dto.ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", def.Name, uuid.NewString()[:8], format),
		ContentType: contentType,
		Bytes:       raw,
	}, nil
}

// buildDataset flattens serialized records into export columns: id first,
// then the schema fields in declaration order.
func buildDataset(def schema.Definition, records []map[string]interface{}) export.Dataset {
	headers := make([]string, 0, len(def.Fields)+1)
	headers = append(headers, "id")
	for _, f := range def.Fields {
		headers = append(headers, f.Name)
	}

	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		row := make(map[string]string, len(headers))
		for _, header := range headers {
			if value, ok := record[header]; ok && value != nil {
				row[header] = fmt.Sprintf("%v", value)
			}
		}
		rows = append(rows, row)
	}

	return export.Dataset{Headers: headers, Rows: rows}
}
