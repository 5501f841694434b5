package converter

import (
	"patient-appointment-api/internal/delivery/dto"
	"patient-appointment-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		PatientID: patient.ID,
		Name:      patient.Name,
		Email:     patient.Email,
		Phone:     patient.Phone,
		CreatedAt: patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(&patient)
	}
	return responses
}
