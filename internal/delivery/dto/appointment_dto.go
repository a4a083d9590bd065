package dto

import (
	"time"
)

type CreateAppointmentRequest struct {
	PatientID       int       `json:"patient_id" validate:"required,gt=0"`
	DoctorID        int       `json:"doctor_id" validate:"required,gt=0"`
	AppointmentType string    `json:"appointment_type" validate:"required,oneof=consultation examination procedure surgery follow_up emergency"`
	ScheduledDate   time.Time `json:"scheduled_date" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,gte=5,lte=480"`
	Reason          string    `json:"reason,omitempty" validate:"omitempty,max=255"`
	Notes           string    `json:"notes,omitempty"`
	Symptoms        string    `json:"symptoms,omitempty"`
}

// UpdateAppointmentRequest is a partial merge; a new scheduled date
// re-runs the slot conflict check
type UpdateAppointmentRequest struct {
	ScheduledDate   *time.Time `json:"scheduled_date,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty" validate:"omitempty,gte=5,lte=480"`
	Reason          *string    `json:"reason,omitempty" validate:"omitempty,max=255"`
	Notes           *string    `json:"notes,omitempty"`
	Symptoms        *string    `json:"symptoms,omitempty"`
}

type AppointmentResponse struct {
	ID              int       `json:"id"`
	PatientID       int       `json:"patient_id"`
	PatientName     string    `json:"patient_name,omitempty"`
	DoctorID        int       `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	AppointmentType string    `json:"appointment_type"`
	Status          string    `json:"status"`
	ScheduledDate   time.Time `json:"scheduled_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Symptoms        string    `json:"symptoms,omitempty"`
	CreatedBy       int       `json:"created_by"`
	VisitID         *int      `json:"visit_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
