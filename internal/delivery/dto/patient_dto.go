package dto

import (
	"time"
)

type CreatePatientRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=50"`
	LastName    string `json:"last_name" validate:"required,max=50"`
	MiddleName  string `json:"middle_name,omitempty" validate:"omitempty,max=50"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"required,oneof=male female other"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address     string `json:"address,omitempty"`

	BloodType             string `json:"blood_type,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies             string `json:"allergies,omitempty"`
	ChronicDiseases       string `json:"chronic_diseases,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty" validate:"omitempty,max=100"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty" validate:"omitempty,max=20"`
}

// UpdatePatientRequest is a partial merge: nil fields stay untouched
type UpdatePatientRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	MiddleName  *string `json:"middle_name,omitempty" validate:"omitempty,max=50"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address     *string `json:"address,omitempty"`

	BloodType             *string `json:"blood_type,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies             *string `json:"allergies,omitempty"`
	ChronicDiseases       *string `json:"chronic_diseases,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty" validate:"omitempty,max=100"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty" validate:"omitempty,max=20"`
}

type PatientResponse struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	MiddleName  string `json:"middle_name,omitempty"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`

	BloodType             string `json:"blood_type,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	ChronicDiseases       string `json:"chronic_diseases,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
