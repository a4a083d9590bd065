package converter

import (
	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
)

// VisitToResponse converts a Visit entity to VisitResponse DTO,
// including whatever child records are loaded
func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	response := &dto.VisitResponse{
		ID:            visit.ID,
		PatientID:     visit.PatientID,
		DoctorID:      visit.DoctorID,
		AppointmentID: visit.AppointmentID,
		Status:        string(visit.Status),
		VisitDate:     visit.VisitDate,

		ChiefComplaint:          visit.ChiefComplaint,
		HistoryOfPresentIllness: visit.HistoryOfPresentIllness,
		PhysicalExamination:     visit.PhysicalExamination,
		Assessment:              visit.Assessment,
		Plan:                    visit.Plan,

		CreatedBy: visit.CreatedBy,
		CreatedAt: visit.CreatedAt,
		UpdatedAt: visit.UpdatedAt,
	}

	if len(visit.Diagnoses) > 0 {
		response.Diagnoses = DiagnosesToResponses(visit.Diagnoses)
	}
	if len(visit.Treatments) > 0 {
		response.Treatments = TreatmentsToResponses(visit.Treatments)
	}
	if visit.VitalSigns != nil {
		response.VitalSigns = VitalSignsToResponse(visit.VitalSigns)
	}

	return response
}

// VisitsToResponses converts a slice of Visit entities to VisitResponse DTOs
func VisitsToResponses(visits []entity.Visit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(visits))
	for i, visit := range visits {
		responses[i] = *VisitToResponse(&visit)
	}
	return responses
}

// DiagnosisToResponse converts a Diagnosis entity to DiagnosisResponse DTO
func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}

	return &dto.DiagnosisResponse{
		ID:            diagnosis.ID,
		VisitID:       diagnosis.VisitID,
		ICDCode:       diagnosis.ICDCode,
		DiagnosisName: diagnosis.DiagnosisName,
		IsPrimary:     diagnosis.IsPrimary,
		CreatedAt:     diagnosis.CreatedAt,
	}
}

// DiagnosesToResponses converts a slice of Diagnosis entities to DTOs
func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i, diagnosis := range diagnoses {
		responses[i] = *DiagnosisToResponse(&diagnosis)
	}
	return responses
}

// TreatmentToResponse converts a Treatment entity to TreatmentResponse DTO
func TreatmentToResponse(treatment *entity.Treatment) *dto.TreatmentResponse {
	if treatment == nil {
		return nil
	}

	return &dto.TreatmentResponse{
		ID:            treatment.ID,
		VisitID:       treatment.VisitID,
		TreatmentName: treatment.TreatmentName,
		Dosage:        treatment.Dosage,
		Frequency:     treatment.Frequency,
		DurationDays:  treatment.DurationDays,
		CreatedAt:     treatment.CreatedAt,
	}
}

// TreatmentsToResponses converts a slice of Treatment entities to DTOs
func TreatmentsToResponses(treatments []entity.Treatment) []dto.TreatmentResponse {
	responses := make([]dto.TreatmentResponse, len(treatments))
	for i, treatment := range treatments {
		responses[i] = *TreatmentToResponse(&treatment)
	}
	return responses
}

// VitalSignsToResponse converts a VitalSigns entity to VitalSignsResponse DTO
func VitalSignsToResponse(vitals *entity.VitalSigns) *dto.VitalSignsResponse {
	if vitals == nil {
		return nil
	}

	return &dto.VitalSignsResponse{
		ID:                     vitals.ID,
		VisitID:                vitals.VisitID,
		BloodPressureSystolic:  vitals.BloodPressureSystolic,
		BloodPressureDiastolic: vitals.BloodPressureDiastolic,
		HeartRate:              vitals.HeartRate,
		Temperature:            vitals.Temperature,
		Weight:                 vitals.Weight,
		Height:                 vitals.Height,
		BMI:                    vitals.BMI,
		MeasuredAt:             vitals.MeasuredAt,
	}
}
