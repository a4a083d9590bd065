package entity

import (
	"time"
)

// PrescriptionStatus state machine:
//
//	active → completed
//
// cancelled and expired are terminal. There is no automatic expiry;
// expired is set explicitly.
type PrescriptionStatus string

const (
	PrescriptionActive    PrescriptionStatus = "active"
	PrescriptionCompleted PrescriptionStatus = "completed"
	PrescriptionCancelled PrescriptionStatus = "cancelled"
	PrescriptionExpired   PrescriptionStatus = "expired"
)

var prescriptionTransitions = map[PrescriptionStatus][]PrescriptionStatus{
	PrescriptionActive:    {PrescriptionCompleted, PrescriptionCancelled, PrescriptionExpired},
	PrescriptionCompleted: {},
	PrescriptionCancelled: {},
	PrescriptionExpired:   {},
}

func (s PrescriptionStatus) IsValid() bool {
	_, ok := prescriptionTransitions[s]
	return ok
}

func (s PrescriptionStatus) IsTerminal() bool {
	return len(prescriptionTransitions[s]) == 0
}

func (s PrescriptionStatus) CanTransitionTo(next PrescriptionStatus) bool {
	for _, allowed := range prescriptionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Prescription holds one or more medication line items for a patient.
// Medications are cascade-deleted with the prescription.
type Prescription struct {
	ID        int  `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int  `gorm:"not null;index" json:"patient_id"`
	DoctorID  int  `gorm:"not null;index" json:"doctor_id"`
	VisitID   *int `gorm:"index" json:"visit_id,omitempty"`

	Status           PrescriptionStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	PrescriptionDate time.Time          `gorm:"autoCreateTime" json:"prescription_date"`

	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`

	CreatedBy int       `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Visit   *Visit  `gorm:"foreignKey:VisitID" json:"visit,omitempty"`

	Medications []Medication `gorm:"foreignKey:PrescriptionID;constraint:OnDelete:CASCADE" json:"medications,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// Medication is a single drug line item on a prescription
type Medication struct {
	ID             int `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID int `gorm:"not null;index" json:"prescription_id"`

	MedicationName string `gorm:"type:varchar(255);not null" json:"medication_name"`
	GenericName    string `gorm:"type:varchar(255)" json:"generic_name,omitempty"`
	DosageForm     string `gorm:"type:varchar(100)" json:"dosage_form,omitempty"`
	Strength       string `gorm:"type:varchar(100)" json:"strength,omitempty"`

	Dosage       string `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency    string `gorm:"type:varchar(100);not null" json:"frequency"`
	DurationDays int    `gorm:"not null" json:"duration_days"`

	Instructions string `gorm:"type:text" json:"instructions,omitempty"`
	Quantity     int    `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Medication) TableName() string {
	return "medications"
}
