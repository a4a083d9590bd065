package converter

import (
	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
)

// SurgeryToResponse converts a Surgery entity to SurgeryResponse DTO
func SurgeryToResponse(surgery *entity.Surgery) *dto.SurgeryResponse {
	if surgery == nil {
		return nil
	}

	response := &dto.SurgeryResponse{
		ID:        surgery.ID,
		PatientID: surgery.PatientID,
		SurgeonID: surgery.SurgeonID,

		OperationName: surgery.OperationName,
		OperationDate: surgery.OperationDate,
		StartTime:     surgery.StartTime,
		EndTime:       surgery.EndTime,

		PreOpDays:  surgery.PreOpDays,
		PostOpDays: surgery.PostOpDays,

		Notes:         surgery.Notes,
		Complications: surgery.Complications,
		Outcome:       surgery.Outcome,

		AdditionalData: surgery.AdditionalData,

		CreatedBy: surgery.CreatedBy,
		CreatedAt: surgery.CreatedAt,
		UpdatedAt: surgery.UpdatedAt,
	}

	if surgery.Patient.ID != 0 {
		response.PatientName = surgery.Patient.FullName()
	}
	if surgery.Surgeon.ID != 0 {
		response.SurgeonName = surgery.Surgeon.FullName
	}

	return response
}

// SurgeriesToResponses converts a slice of Surgery entities to DTOs
func SurgeriesToResponses(surgeries []entity.Surgery) []dto.SurgeryResponse {
	responses := make([]dto.SurgeryResponse, len(surgeries))
	for i, surgery := range surgeries {
		responses[i] = *SurgeryToResponse(&surgery)
	}
	return responses
}
