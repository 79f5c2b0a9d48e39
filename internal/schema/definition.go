// Package schema declares the shape of every document collection once and
// derives validation, JSON Schema introspection and serialization from the
// same field table.
package schema

// FieldType enumerates the value types a document field may hold.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
	TypeDate    FieldType = "date"
)

// Semester and day literals accepted by enum fields.
var (
	Semesters  = []string{"Fall", "Spring", "Summer"}
	DaysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// Field describes a single document field: its type, whether it is required
// on create, and any range or enum constraint.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Min         *int
	Max         *int
	Enum        []string
	Default     interface{}
	Description string
}

// Definition describes one collection. Name doubles as the collection name
// in the store.
type Definition struct {
	Name        string
	Title       string
	Description string
	Fields      []Field
}

// Event holds upcoming events managed by the department.
var Event = Definition{
	Name:        "event",
	Title:       "Event",
	Description: "Upcoming events managed by the department",
	Fields: []Field{
		{Name: "title", Type: TypeString, Required: true, Description: "Event title"},
		{Name: "description", Type: TypeString, Description: "Details about the event"},
		{Name: "date", Type: TypeDate, Required: true, Description: "Event date"},
		{Name: "time", Type: TypeString, Description: "Event time (e.g., 10:00 AM)"},
		{Name: "location", Type: TypeString, Description: "Event location"},
		{Name: "audience", Type: TypeString, Description: "Target audience (e.g., Students, Staff)"},
		{Name: "link", Type: TypeString, Description: "Optional registration/info link"},
	},
}

// Course holds course information per semester.
var Course = Definition{
	Name:        "course",
	Title:       "Course",
	Description: "Course information per semester",
	Fields: []Field{
		{Name: "code", Type: TypeString, Required: true, Description: "Course code (e.g., GYD101)"},
		{Name: "title", Type: TypeString, Required: true, Description: "Course title"},
		{Name: "semester", Type: TypeString, Required: true, Enum: Semesters, Description: "Semester offering"},
		{Name: "year", Type: TypeInteger, Required: true, Min: intPtr(2000), Max: intPtr(2100), Description: "Academic year (e.g., 2025)"},
		{Name: "lecturer", Type: TypeString, Description: "Course lecturer/instructor"},
		{Name: "credits", Type: TypeInteger, Min: intPtr(0), Max: intPtr(30), Default: 3, Description: "Credit units"},
		{Name: "description", Type: TypeString, Description: "Short course description"},
	},
}

// Timetable holds semester timetable entries, one per day/time/venue.
var Timetable = Definition{
	Name:        "timetable",
	Title:       "Timetable",
	Description: "Semester timetable entries (per day/time/venue)",
	Fields: []Field{
		{Name: "semester", Type: TypeString, Required: true, Enum: Semesters, Description: "Semester"},
		{Name: "year", Type: TypeInteger, Required: true, Min: intPtr(2000), Max: intPtr(2100), Description: "Academic year"},
		{Name: "day", Type: TypeString, Required: true, Enum: DaysOfWeek, Description: "Day of week"},
		{Name: "start_time", Type: TypeString, Required: true, Description: "Start time (e.g., 09:00)"},
		{Name: "end_time", Type: TypeString, Required: true, Description: "End time (e.g., 10:30)"},
		{Name: "course_code", Type: TypeString, Required: true, Description: "Course code this slot belongs to"},
		{Name: "venue", Type: TypeString, Description: "Classroom or hall"},
		{Name: "lecturer", Type: TypeString, Description: "Lecturer name"},
		{Name: "notes", Type: TypeString, Description: "Additional information"},
	},
}

// All returns every collection definition keyed by collection name.
func All() map[string]Definition {
	return map[string]Definition{
		Event.Name:     Event,
		Course.Name:    Course,
		Timetable.Name: Timetable,
	}
}

// field looks up a field definition by name.
func (d Definition) field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// JSONSchema renders the definition as a JSON Schema object for client-side
// form generation. It is derived mechanically from the same field table used
// for validation.
func (d Definition) JSONSchema() map[string]interface{} {
	properties := make(map[string]interface{}, len(d.Fields))
	required := make([]string, 0, len(d.Fields))

	for _, f := range d.Fields {
		prop := map[string]interface{}{}
		switch f.Type {
		case TypeInteger:
			prop["type"] = "integer"
		case TypeDate:
			prop["type"] = "string"
			prop["format"] = "date"
		default:
			prop["type"] = "string"
		}
		if len(f.Enum) > 0 {
			prop["enum"] = append([]string(nil), f.Enum...)
		}
		if f.Min != nil {
			prop["minimum"] = *f.Min
		}
		if f.Max != nil {
			prop["maximum"] = *f.Max
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		properties[f.Name] = prop

		if f.Required {
			required = append(required, f.Name)
		}
	}

	return map[string]interface{}{
		"title":       d.Title,
		"description": d.Description,
		"type":        "object",
		"properties":  properties,
		"required":    required,
	}
}

func intPtr(v int) *int {
	return &v
}
