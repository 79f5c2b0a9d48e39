package dto

// EventListRequest narrows an event listing.
type EventListRequest struct {
	Limit int64 `validate:"omitempty,min=1"`
}

// CourseListRequest narrows a course listing. Year is a pointer so an absent
// filter is distinguishable from year zero.
type CourseListRequest struct {
	Semester string
	Year     *int
	Limit    int64 `validate:"omitempty,min=1"`
}

// TimetableListRequest narrows a timetable listing.
type TimetableListRequest struct {
	Semester string
	Year     *int
	Day      string
	Limit    int64 `validate:"omitempty,min=1"`
}
