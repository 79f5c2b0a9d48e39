package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyd-platform/department-api/internal/dto"
	appErrors "github.com/gyd-platform/department-api/pkg/errors"
)

type exportServiceMock struct {
	coursesReq   dto.CourseExportRequest
	coursesFile  *dto.ExportFile
	coursesErr   error
	timetableReq dto.TimetableExportRequest
	timetableErr error
}

func (m *exportServiceMock) Courses(ctx context.Context, req dto.CourseExportRequest) (*dto.ExportFile, error) {
	m.coursesReq = req
	return m.coursesFile, m.coursesErr
}

func (m *exportServiceMock) Timetable(ctx context.Context, req dto.TimetableExportRequest) (*dto.ExportFile, error) {
	m.timetableReq = req
	if m.timetableErr != nil {
		return nil, m.timetableErr
	}
	return &dto.ExportFile{Filename: "timetable.csv", ContentType: "text/csv", Bytes: []byte("id\n")}, nil
}

func TestExportHandlerCoursesCSV(t *testing.T) {
	mockSvc := &exportServiceMock{coursesFile: &dto.ExportFile{
		Filename:    "course-1a2b3c4d.csv",
		ContentType: "text/csv",
		Bytes:       []byte("id,code\nabc,GYD101\n"),
	}}
	h := NewExportHandler(mockSvc)
	c, w := newTestContext(t, http.MethodGet, "/api/courses/export?semester=Fall&format=csv", nil)

	h.Courses(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mockSvc.coursesReq.Format)
	assert.Equal(t, "Fall", mockSvc.coursesReq.Semester)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="course-1a2b3c4d.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "GYD101")
}

func TestExportHandlerCoursesUnknownFormat(t *testing.T) {
	mockSvc := &exportServiceMock{coursesErr: appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")}
	h := NewExportHandler(mockSvc)
	c, w := newTestContext(t, http.MethodGet, "/api/courses/export?format=xlsx", nil)

	h.Courses(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportHandlerTimetablePassesFilters(t *testing.T) {
	mockSvc := &exportServiceMock{}
	h := NewExportHandler(mockSvc)
	c, w := newTestContext(t, http.MethodGet, "/api/timetable/export?day=Friday&year=2025", nil)

	h.Timetable(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Friday", mockSvc.timetableReq.Day)
	require.NotNil(t, mockSvc.timetableReq.Year)
	assert.Equal(t, 2025, *mockSvc.timetableReq.Year)
	assert.Empty(t, mockSvc.timetableReq.Format)
}
