package schema

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/gyd-platform/department-api/pkg/errors"
)

func TestEventValidateMinimalPayload(t *testing.T) {
	doc, err := Event.Validate(map[string]interface{}{
		"title": "Open Day",
		"date":  "2025-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Open Day", doc["title"])
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), doc["date"])
	_, hasDescription := doc["description"]
	assert.False(t, hasDescription)
}

func TestEventValidateEnumeratesAllViolations(t *testing.T) {
	_, err := Event.Validate(map[string]interface{}{
		"date": "not-a-date",
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "title: field required")
	assert.Contains(t, appErr.Message, "date: invalid date")
}

func TestEventValidateRejectsUnknownField(t *testing.T) {
	_, err := Event.Validate(map[string]interface{}{
		"title":   "Open Day",
		"date":    "2025-03-01",
		"surpise": "typo",
	})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "surpise: unknown field")
}

func TestCourseValidateYearBoundaries(t *testing.T) {
	base := func(year interface{}) map[string]interface{} {
		return map[string]interface{}{
			"code":     "GYD101",
			"title":    "Intro",
			"semester": "Fall",
			"year":     year,
		}
	}

	for _, year := range []interface{}{2000, 2100, float64(2025)} {
		_, err := Course.Validate(base(year))
		require.NoError(t, err, "year %v should be accepted", year)
	}

	for _, year := range []interface{}{1999, 2101, 2025.5, "2025"} {
		_, err := Course.Validate(base(year))
		require.Error(t, err, "year %v should be rejected", year)
		assert.Contains(t, appErrors.FromError(err).Message, "year:")
	}
}

func TestCourseValidateAppliesCreditsDefault(t *testing.T) {
	doc, err := Course.Validate(map[string]interface{}{
		"code":     "GYD101",
		"title":    "Intro",
		"semester": "Spring",
		"year":     2025,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, doc["credits"])
}

func TestCourseValidateCreditsRange(t *testing.T) {
	payload := map[string]interface{}{
		"code":     "GYD101",
		"title":    "Intro",
		"semester": "Summer",
		"year":     2025,
		"credits":  31,
	}
	_, err := Course.Validate(payload)
	require.Error(t, err)

	payload["credits"] = 0
	doc, err := Course.Validate(payload)
	require.NoError(t, err)
	assert.Equal(t, 0, doc["credits"])
}

func TestCourseValidateSemesterEnum(t *testing.T) {
	_, err := Course.Validate(map[string]interface{}{
		"code":     "GYD101",
		"title":    "Intro",
		"semester": "Winter",
		"year":     2025,
	})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "semester: must be one of Fall, Spring, Summer")
}

func TestTimetableValidateDayEnum(t *testing.T) {
	payload := map[string]interface{}{
		"semester":    "Fall",
		"year":        2025,
		"day":         "Sunday",
		"start_time":  "09:00",
		"end_time":    "10:30",
		"course_code": "GYD101",
	}
	_, err := Timetable.Validate(payload)
	require.Error(t, err)

	payload["day"] = "Saturday"
	_, err = Timetable.Validate(payload)
	require.NoError(t, err)
}

func TestValidatePartialSkipsNullFields(t *testing.T) {
	doc, err := Event.ValidatePartial(map[string]interface{}{
		"location": "Main Hall",
		"title":    nil,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"location": "Main Hall"}, doc)
}

func TestValidatePartialRejectsEmptyUpdate(t *testing.T) {
	for _, payload := range []map[string]interface{}{
		{},
		{"title": nil, "location": nil},
	} {
		_, err := Event.ValidatePartial(payload)
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrBadRequest.Code, appErr.Code)
		assert.Equal(t, "no fields to update", appErr.Message)
	}
}

func TestValidatePartialChecksConstraints(t *testing.T) {
	_, err := Course.ValidatePartial(map[string]interface{}{"year": 1815})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	doc, err := Course.ValidatePartial(map[string]interface{}{"year": 2026})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"year": 2026}, doc)
}

func TestValidatePartialDoesNotApplyDefaults(t *testing.T) {
	doc, err := Course.ValidatePartial(map[string]interface{}{"lecturer": "Dr. A"})
	require.NoError(t, err)
	_, hasCredits := doc["credits"]
	assert.False(t, hasCredits)
}
