package converter

import (
	"patient-appointment-api/internal/delivery/dto"
	"patient-appointment-api/internal/domain/entity"
)

// AppointmentToCreateResponse converts a freshly created Appointment entity
// to the creation response DTO, carrying the workflow's success message.
func AppointmentToCreateResponse(appointment *entity.Appointment, message string) *dto.CreateAppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.CreateAppointmentResponse{
		AppointmentID:   appointment.ID,
		PatientID:       appointment.PatientID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Reason:          appointment.Reason,
		Message:         message,
	}
}

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		AppointmentID:   appointment.ID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.Patient.Name,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Reason:          appointment.Reason,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}

// AppointmentToDetailResponse converts an Appointment entity with its Patient
// to the detail DTO exposing the patient's contact fields.
func AppointmentToDetailResponse(appointment *entity.Appointment) *dto.AppointmentDetailResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentDetailResponse{
		AppointmentID:   appointment.ID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.Patient.Name,
		PatientEmail:    appointment.Patient.Email,
		PatientPhone:    appointment.Patient.Phone,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Reason:          appointment.Reason,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
	}
}
