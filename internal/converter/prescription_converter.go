package converter

import (
	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to
// PrescriptionResponse DTO, including loaded medications
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:               prescription.ID,
		PatientID:        prescription.PatientID,
		DoctorID:         prescription.DoctorID,
		VisitID:          prescription.VisitID,
		Status:           string(prescription.Status),
		PrescriptionDate: prescription.PrescriptionDate,
		Notes:            prescription.Notes,
		FollowUpDate:     prescription.FollowUpDate,
		Medications:      MedicationsToResponses(prescription.Medications),
		CreatedBy:        prescription.CreatedBy,
		CreatedAt:        prescription.CreatedAt,
		UpdatedAt:        prescription.UpdatedAt,
	}
}

// PrescriptionsToResponses converts a slice of Prescription entities to DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescription)
	}
	return responses
}

// MedicationToResponse converts a Medication entity to MedicationResponse DTO
func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	return &dto.MedicationResponse{
		ID:             medication.ID,
		PrescriptionID: medication.PrescriptionID,
		MedicationName: medication.MedicationName,
		GenericName:    medication.GenericName,
		DosageForm:     medication.DosageForm,
		Strength:       medication.Strength,
		Dosage:         medication.Dosage,
		Frequency:      medication.Frequency,
		DurationDays:   medication.DurationDays,
		Instructions:   medication.Instructions,
		Quantity:       medication.Quantity,
		CreatedAt:      medication.CreatedAt,
	}
}

// MedicationsToResponses converts a slice of Medication entities to DTOs
func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i, medication := range medications {
		responses[i] = *MedicationToResponse(&medication)
	}
	return responses
}
