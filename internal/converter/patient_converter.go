package converter

import (
	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		MiddleName:  patient.MiddleName,
		FullName:    patient.FullName(),
		DateOfBirth: patient.DateOfBirth.Format("2006-01-02"),
		Gender:      string(patient.Gender),
		Phone:       patient.Phone,
		Address:     patient.Address,

		BloodType:             string(patient.BloodType),
		Allergies:             patient.Allergies,
		ChronicDiseases:       patient.ChronicDiseases,
		EmergencyContactName:  patient.EmergencyContactName,
		EmergencyContactPhone: patient.EmergencyContactPhone,

		IsActive:  patient.IsActive,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(&patient)
	}
	return responses
}
