package handler

import (
	"fmt"
	"net/http"

	"patient-appointment-api/internal/usecase"
	"patient-appointment-api/pkg/response"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
	}
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found", fmt.Sprintf("Patient with ID %s does not exist", id))
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, patient)
}
