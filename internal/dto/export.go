package dto

// Export formats supported by the tabular exporters.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// CourseExportRequest describes a course export download.
type CourseExportRequest struct {
	CourseListRequest
	Format string `validate:"omitempty,oneof=csv pdf"`
}

// TimetableExportRequest describes a timetable export download.
type TimetableExportRequest struct {
	TimetableListRequest
	Format string `validate:"omitempty,oneof=csv pdf"`
}

// ExportFile is a rendered export ready to be written to the response.
type ExportFile struct {
	Filename    string
	ContentType string
	Bytes       []byte
}
