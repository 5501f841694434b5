package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"patient-appointment-api/internal/delivery/dto"
	"patient-appointment-api/internal/domain/entity"
	"patient-appointment-api/internal/usecase"
	"patient-appointment-api/pkg/response"
	"patient-appointment-api/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	// Trim before validation so the length rule sees the value that persists.
	req.Reason = strings.TrimSpace(req.Reason)

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found", fmt.Sprintf("Patient with ID %d does not exist", req.PatientID))
		case usecase.ErrSchedulingConflict:
			response.Conflict(w, "Scheduling conflict", "Patient already has an appointment at this date and time")
		case usecase.ErrInvalidDate:
			response.BadRequest(w, "AppointmentDate must be a valid date in YYYY-MM-DD format")
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	filter := &entity.AppointmentFilter{
		PatientID: r.URL.Query().Get("patientId"),
		Date:      r.URL.Query().Get("date"),
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

// GetAppointment forwards the path identifier as opaque text; any value
// that matches no row is a plain 404, never a format error.
func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found", fmt.Sprintf("Appointment with ID %s not found", id))
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}
