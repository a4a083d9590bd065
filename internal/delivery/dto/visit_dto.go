package dto

import (
	"time"
)

type DiagnosisRequest struct {
	ICDCode       string `json:"icd_code" validate:"required,max=10"`
	DiagnosisName string `json:"diagnosis_name" validate:"required,max=255"`
	IsPrimary     *bool  `json:"is_primary,omitempty"`
}

type TreatmentRequest struct {
	TreatmentName string `json:"treatment_name" validate:"required,max=255"`
	Dosage        string `json:"dosage,omitempty" validate:"omitempty,max=100"`
	Frequency     string `json:"frequency,omitempty" validate:"omitempty,max=100"`
	DurationDays  int    `json:"duration_days,omitempty" validate:"omitempty,gte=0"`
}

type VitalSignsRequest struct {
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic,omitempty" validate:"omitempty,gte=0,lte=300"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic,omitempty" validate:"omitempty,gte=0,lte=200"`
	HeartRate              *int     `json:"heart_rate,omitempty" validate:"omitempty,gte=0,lte=300"`
	Temperature            *float64 `json:"temperature,omitempty" validate:"omitempty,gte=25,lte=45"`
	Weight                 *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Height                 *float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
	BMI                    *float64 `json:"bmi,omitempty" validate:"omitempty,gt=0"`
}

type CreateVisitRequest struct {
	PatientID     int        `json:"patient_id" validate:"required,gt=0"`
	DoctorID      int        `json:"doctor_id" validate:"required,gt=0"`
	AppointmentID *int       `json:"appointment_id,omitempty" validate:"omitempty,gt=0"`
	VisitDate     *time.Time `json:"visit_date,omitempty"`

	ChiefComplaint          string `json:"chief_complaint,omitempty"`
	HistoryOfPresentIllness string `json:"history_of_present_illness,omitempty"`
	PhysicalExamination     string `json:"physical_examination,omitempty"`
	Assessment              string `json:"assessment,omitempty"`
	Plan                    string `json:"plan,omitempty"`

	Diagnoses  []DiagnosisRequest `json:"diagnoses,omitempty" validate:"omitempty,dive"`
	Treatments []TreatmentRequest `json:"treatments,omitempty" validate:"omitempty,dive"`
	VitalSigns *VitalSignsRequest `json:"vital_signs,omitempty"`
}

type UpdateVisitRequest struct {
	VisitDate               *time.Time `json:"visit_date,omitempty"`
	ChiefComplaint          *string    `json:"chief_complaint,omitempty"`
	HistoryOfPresentIllness *string    `json:"history_of_present_illness,omitempty"`
	PhysicalExamination     *string    `json:"physical_examination,omitempty"`
	Assessment              *string    `json:"assessment,omitempty"`
	Plan                    *string    `json:"plan,omitempty"`
}

type DiagnosisResponse struct {
	ID            int       `json:"id"`
	VisitID       int       `json:"visit_id"`
	ICDCode       string    `json:"icd_code"`
	DiagnosisName string    `json:"diagnosis_name"`
	IsPrimary     bool      `json:"is_primary"`
	CreatedAt     time.Time `json:"created_at"`
}

type TreatmentResponse struct {
	ID            int       `json:"id"`
	VisitID       int       `json:"visit_id"`
	TreatmentName string    `json:"treatment_name"`
	Dosage        string    `json:"dosage,omitempty"`
	Frequency     string    `json:"frequency,omitempty"`
	DurationDays  int       `json:"duration_days,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type VitalSignsResponse struct {
	ID                     int       `json:"id"`
	VisitID                int       `json:"visit_id"`
	BloodPressureSystolic  *int      `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int      `json:"blood_pressure_diastolic,omitempty"`
	HeartRate              *int      `json:"heart_rate,omitempty"`
	Temperature            *float64  `json:"temperature,omitempty"`
	Weight                 *float64  `json:"weight,omitempty"`
	Height                 *float64  `json:"height,omitempty"`
	BMI                    *float64  `json:"bmi,omitempty"`
	MeasuredAt             time.Time `json:"measured_at"`
}

type VisitResponse struct {
	ID            int       `json:"id"`
	PatientID     int       `json:"patient_id"`
	DoctorID      int       `json:"doctor_id"`
	AppointmentID *int      `json:"appointment_id,omitempty"`
	Status        string    `json:"status"`
	VisitDate     time.Time `json:"visit_date"`

	ChiefComplaint          string `json:"chief_complaint,omitempty"`
	HistoryOfPresentIllness string `json:"history_of_present_illness,omitempty"`
	PhysicalExamination     string `json:"physical_examination,omitempty"`
	Assessment              string `json:"assessment,omitempty"`
	Plan                    string `json:"plan,omitempty"`

	Diagnoses  []DiagnosisResponse `json:"diagnoses,omitempty"`
	Treatments []TreatmentResponse `json:"treatments,omitempty"`
	VitalSigns *VitalSignsResponse `json:"vital_signs,omitempty"`

	CreatedBy int       `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}
