package converter

import (
	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to
// AppointmentResponse DTO. Patient and doctor names are filled in
// when the relationships are preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentType: string(appointment.AppointmentType),
		Status:          string(appointment.Status),
		ScheduledDate:   appointment.ScheduledDate,
		DurationMinutes: appointment.DurationMinutes,
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		Symptoms:        appointment.Symptoms,
		CreatedBy:       appointment.CreatedBy,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Patient.ID != 0 {
		response.PatientName = appointment.Patient.FullName()
	}
	if appointment.Doctor.ID != 0 {
		response.DoctorName = appointment.Doctor.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to
// AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
