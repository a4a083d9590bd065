package dto

import (
	"time"
)

type MedicationRequest struct {
	MedicationName string `json:"medication_name" validate:"required,max=255"`
	GenericName    string `json:"generic_name,omitempty" validate:"omitempty,max=255"`
	DosageForm     string `json:"dosage_form,omitempty" validate:"omitempty,max=100"`
	Strength       string `json:"strength,omitempty" validate:"omitempty,max=100"`
	Dosage         string `json:"dosage" validate:"required,max=100"`
	Frequency      string `json:"frequency" validate:"required,max=100"`
	DurationDays   int    `json:"duration_days" validate:"required,gt=0"`
	Instructions   string `json:"instructions,omitempty"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
}

type CreatePrescriptionRequest struct {
	PatientID    int                 `json:"patient_id" validate:"required,gt=0"`
	DoctorID     int                 `json:"doctor_id" validate:"required,gt=0"`
	VisitID      *int                `json:"visit_id,omitempty" validate:"omitempty,gt=0"`
	Notes        string              `json:"notes,omitempty"`
	FollowUpDate *time.Time          `json:"follow_up_date,omitempty"`
	Medications  []MedicationRequest `json:"medications" validate:"required,min=1,dive"`
}

type UpdatePrescriptionRequest struct {
	Notes        *string    `json:"notes,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
}

type UpdateMedicationRequest struct {
	MedicationName *string `json:"medication_name,omitempty" validate:"omitempty,max=255"`
	GenericName    *string `json:"generic_name,omitempty" validate:"omitempty,max=255"`
	DosageForm     *string `json:"dosage_form,omitempty" validate:"omitempty,max=100"`
	Strength       *string `json:"strength,omitempty" validate:"omitempty,max=100"`
	Dosage         *string `json:"dosage,omitempty" validate:"omitempty,max=100"`
	Frequency      *string `json:"frequency,omitempty" validate:"omitempty,max=100"`
	DurationDays   *int    `json:"duration_days,omitempty" validate:"omitempty,gt=0"`
	Instructions   *string `json:"instructions,omitempty"`
	Quantity       *int    `json:"quantity,omitempty" validate:"omitempty,gt=0"`
}

type MedicationResponse struct {
	ID             int       `json:"id"`
	PrescriptionID int       `json:"prescription_id"`
	MedicationName string    `json:"medication_name"`
	GenericName    string    `json:"generic_name,omitempty"`
	DosageForm     string    `json:"dosage_form,omitempty"`
	Strength       string    `json:"strength,omitempty"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	DurationDays   int       `json:"duration_days"`
	Instructions   string    `json:"instructions,omitempty"`
	Quantity       int       `json:"quantity"`
	CreatedAt      time.Time `json:"created_at"`
}

type PrescriptionResponse struct {
	ID               int                  `json:"id"`
	PatientID        int                  `json:"patient_id"`
	DoctorID         int                  `json:"doctor_id"`
	VisitID          *int                 `json:"visit_id,omitempty"`
	Status           string               `json:"status"`
	PrescriptionDate time.Time            `json:"prescription_date"`
	Notes            string               `json:"notes,omitempty"`
	FollowUpDate     *time.Time           `json:"follow_up_date,omitempty"`
	Medications      []MedicationResponse `json:"medications"`
	CreatedBy        int                  `json:"created_by"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
