package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOpenAPISpec(t *testing.T) {
	h := NewDocsHandler("Patient Appointment API", "1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
	rec := httptest.NewRecorder()
	h.GetOpenAPISpec(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var spec map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))

	assert.Equal(t, "3.0.3", spec["openapi"])

	info, ok := spec["info"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Patient Appointment API", info["title"])
	assert.Equal(t, "1.0.0", info["version"])

	paths, ok := spec["paths"].(map[string]interface{})
	require.True(t, ok)
	for _, path := range []string{
		"/api/appointments",
		"/api/appointments/{id}",
		"/api/patients",
		"/api/patients/{id}",
		"/health",
	} {
		assert.Contains(t, paths, path)
	}

	appointments, ok := paths["/api/appointments"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, appointments, "post")
	assert.Contains(t, appointments, "get")
}

func TestGetOpenAPISpec_DocumentsRequestSchema(t *testing.T) {
	h := NewDocsHandler("Patient Appointment API", "1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
	rec := httptest.NewRecorder()
	h.GetOpenAPISpec(rec, req)

	var spec struct {
		Components struct {
			Schemas map[string]struct {
				Required []string `json:"required"`
			} `json:"schemas"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))

	createReq, ok := spec.Components.Schemas["CreateAppointmentRequest"]
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"PatientId", "AppointmentDate", "AppointmentTime", "Reason"}, createReq.Required)

	for _, name := range []string{"CreateAppointmentResponse", "AppointmentList", "AppointmentDetail", "Patient", "Error", "ValidationError"} {
		assert.Contains(t, spec.Components.Schemas, name)
	}
}
