package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"patient-appointment-api/internal/delivery/dto"
	"patient-appointment-api/internal/usecase"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPatientUsecase struct {
	listFn func(ctx context.Context) ([]dto.PatientResponse, error)
	getFn  func(ctx context.Context, id string) (*dto.PatientResponse, error)
}

func (s *stubPatientUsecase) ListPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	return s.listFn(ctx)
}

func (s *stubPatientUsecase) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	return s.getFn(ctx, id)
}

func getPatient(t *testing.T, h *PatientHandler, id string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/patients/{id}", h.GetPatient).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/patients/"+id, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetAllPatientsHandler(t *testing.T) {
	email := "john.doe@email.com"
	stub := &stubPatientUsecase{
		listFn: func(ctx context.Context) ([]dto.PatientResponse, error) {
			return []dto.PatientResponse{
				{PatientID: 1, Name: "John Doe", Email: &email},
				{PatientID: 2, Name: "Jane Smith"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	NewPatientHandler(stub).GetAllPatients(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "John Doe", body[0]["Name"])
	assert.Equal(t, "john.doe@email.com", body[0]["Email"])
	assert.Nil(t, body[1]["Email"])
}

func TestGetAllPatientsHandler_EmptyList(t *testing.T) {
	stub := &stubPatientUsecase{
		listFn: func(ctx context.Context) ([]dto.PatientResponse, error) {
			return []dto.PatientResponse{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	NewPatientHandler(stub).GetAllPatients(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetPatientHandler_Success(t *testing.T) {
	stub := &stubPatientUsecase{
		getFn: func(ctx context.Context, id string) (*dto.PatientResponse, error) {
			return &dto.PatientResponse{PatientID: 1, Name: "John Doe"}, nil
		},
	}

	rec := getPatient(t, NewPatientHandler(stub), "1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["PatientId"])
	assert.Equal(t, "John Doe", body["Name"])
}

func TestGetPatientHandler_NotFoundEchoesID(t *testing.T) {
	stub := &stubPatientUsecase{
		getFn: func(ctx context.Context, id string) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}
	h := NewPatientHandler(stub)

	for _, id := range []string{"999", "abc"} {
		rec := getPatient(t, h, id)

		assert.Equal(t, http.StatusNotFound, rec.Code, "id %q", id)

		var resp errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Patient not found", resp.Error)
		assert.Equal(t, "Patient with ID "+id+" does not exist", resp.Message)
	}
}

func TestGetPatientHandler_StorageError(t *testing.T) {
	stub := &stubPatientUsecase{
		getFn: func(ctx context.Context, id string) (*dto.PatientResponse, error) {
			return nil, errors.New("connection refused")
		},
	}

	rec := getPatient(t, NewPatientHandler(stub), "1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
