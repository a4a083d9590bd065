package entity

import (
	"time"
)

// VisitStatus state machine:
//
//	scheduled → in_progress → completed
//
// cancelled is terminal from any non-terminal state.
type VisitStatus string

const (
	VisitScheduled  VisitStatus = "scheduled"
	VisitInProgress VisitStatus = "in_progress"
	VisitCompleted  VisitStatus = "completed"
	VisitCancelled  VisitStatus = "cancelled"
)

var visitTransitions = map[VisitStatus][]VisitStatus{
	VisitScheduled:  {VisitInProgress, VisitCompleted, VisitCancelled},
	VisitInProgress: {VisitCompleted, VisitCancelled},
	VisitCompleted:  {},
	VisitCancelled:  {},
}

func (s VisitStatus) IsValid() bool {
	_, ok := visitTransitions[s]
	return ok
}

func (s VisitStatus) IsTerminal() bool {
	return len(visitTransitions[s]) == 0
}

func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	for _, allowed := range visitTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Visit is a clinical encounter, optionally derived from a completed
// appointment. Diagnoses, treatments and vital signs are owned child
// records and are removed with the visit.
type Visit struct {
	ID            int  `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     int  `gorm:"not null;index" json:"patient_id"`
	DoctorID      int  `gorm:"not null;index" json:"doctor_id"`
	AppointmentID *int `gorm:"index" json:"appointment_id,omitempty"`

	Status    VisitStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	VisitDate time.Time   `gorm:"not null;index" json:"visit_date"`

	ChiefComplaint          string `gorm:"type:text" json:"chief_complaint,omitempty"`
	HistoryOfPresentIllness string `gorm:"type:text" json:"history_of_present_illness,omitempty"`
	PhysicalExamination     string `gorm:"type:text" json:"physical_examination,omitempty"`
	Assessment              string `gorm:"type:text" json:"assessment,omitempty"`
	Plan                    string `gorm:"type:text" json:"plan,omitempty"`

	CreatedBy int       `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor      User         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`

	Diagnoses  []Diagnosis `gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE" json:"diagnoses,omitempty"`
	Treatments []Treatment `gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE" json:"treatments,omitempty"`
	VitalSigns *VitalSigns `gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE" json:"vital_signs,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}

// Diagnosis is an ICD-10 coded finding attached to a visit
type Diagnosis struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitID       int       `gorm:"not null;index" json:"visit_id"`
	ICDCode       string    `gorm:"type:varchar(10);not null" json:"icd_code"`
	DiagnosisName string    `gorm:"type:varchar(255);not null" json:"diagnosis_name"`
	IsPrimary     bool      `gorm:"not null;default:true" json:"is_primary"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}

// Treatment is a prescribed course of therapy attached to a visit
type Treatment struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitID       int       `gorm:"not null;index" json:"visit_id"`
	TreatmentName string    `gorm:"type:varchar(255);not null" json:"treatment_name"`
	Dosage        string    `gorm:"type:varchar(100)" json:"dosage,omitempty"`
	Frequency     string    `gorm:"type:varchar(100)" json:"frequency,omitempty"`
	DurationDays  int       `json:"duration_days,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Treatment) TableName() string {
	return "treatments"
}

// VitalSigns is singular per visit: updating replaces the prior record
type VitalSigns struct {
	ID                     int       `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitID                int       `gorm:"not null;uniqueIndex" json:"visit_id"`
	BloodPressureSystolic  *int      `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int      `json:"blood_pressure_diastolic,omitempty"`
	HeartRate              *int      `json:"heart_rate,omitempty"`
	Temperature            *float64  `json:"temperature,omitempty"`
	Weight                 *float64  `json:"weight,omitempty"`
	Height                 *float64  `json:"height,omitempty"`
	BMI                    *float64  `json:"bmi,omitempty"`
	MeasuredAt             time.Time `gorm:"autoCreateTime" json:"measured_at"`
}

func (VitalSigns) TableName() string {
	return "vital_signs"
}
