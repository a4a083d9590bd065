package entity

import (
	"time"
)

// AppointmentFilter narrows appointment listings
type AppointmentFilter struct {
	Skip      int
	Limit     int
	PatientID int
	DoctorID  int
	Status    AppointmentStatus
	DateFrom  *time.Time
	DateTo    *time.Time
}

// VisitFilter narrows visit listings
type VisitFilter struct {
	Skip      int
	Limit     int
	PatientID int
	DoctorID  int
	Status    VisitStatus
}

// PrescriptionFilter narrows prescription listings
type PrescriptionFilter struct {
	Skip      int
	Limit     int
	PatientID int
	DoctorID  int
	Status    PrescriptionStatus
}

// SurgeryFilter narrows surgery listings
type SurgeryFilter struct {
	Skip      int
	Limit     int
	PatientID int
	SurgeonID int
	StartDate *time.Time
	EndDate   *time.Time
}

// BillingFilter narrows billing listings
type BillingFilter struct {
	Skip      int
	Limit     int
	PatientID int
	Status    BillingStatus
}
