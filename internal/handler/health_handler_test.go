package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyd-platform/department-api/internal/dto"
)

type diagnosticServiceMock struct {
	report dto.DiagnosticReport
}

func (m *diagnosticServiceMock) Report(ctx context.Context) dto.DiagnosticReport {
	return m.report
}

func TestHealthHandlerRoot(t *testing.T) {
	h := NewHealthHandler(&diagnosticServiceMock{})
	c, w := newTestContext(t, http.MethodGet, "/", nil)

	h.Root(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Gender & Youth Department API running", body["message"])
}

func TestHealthHandlerTestReportsDegradation(t *testing.T) {
	h := NewHealthHandler(&diagnosticServiceMock{report: dto.DiagnosticReport{
		Backend:  "running",
		Database: "not configured, set DATABASE_URL and DATABASE_NAME",
	}})
	c, w := newTestContext(t, http.MethodGet, "/test", nil)

	h.Test(c)

	// Degraded storage is reported in the body, not through the status code.
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "running", body["backend"])
	assert.Contains(t, body["database"], "not configured")
}

func TestHealthHandlerTestConnected(t *testing.T) {
	h := NewHealthHandler(&diagnosticServiceMock{report: dto.DiagnosticReport{
		Backend:          "running",
		Database:         "connected",
		DatabaseURLSet:   true,
		DatabaseNameSet:  true,
		ConnectionStatus: "connected",
		Collections:      []string{"events", "courses", "timetable"},
	}})
	c, w := newTestContext(t, http.MethodGet, "/test", nil)

	h.Test(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["database_url_set"])
	assert.Equal(t, "connected", body["connection_status"])
}

func TestHealthHandlerSchema(t *testing.T) {
	h := NewHealthHandler(&diagnosticServiceMock{})
	c, w := newTestContext(t, http.MethodGet, "/schema", nil)

	h.Schema(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "event")
	require.Contains(t, body, "course")
	require.Contains(t, body, "timetable")

	course := body["course"]
	assert.Equal(t, "object", course["type"])
	props, ok := course["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "credits")
}
