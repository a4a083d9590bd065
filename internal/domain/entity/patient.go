package entity

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type BloodType string

const (
	BloodAPositive  BloodType = "A+"
	BloodANegative  BloodType = "A-"
	BloodBPositive  BloodType = "B+"
	BloodBNegative  BloodType = "B-"
	BloodABPositive BloodType = "AB+"
	BloodABNegative BloodType = "AB-"
	BloodOPositive  BloodType = "O+"
	BloodONegative  BloodType = "O-"
)

// Patient is the demographic and medical profile of a person under care.
// Patients are soft-deleted: IsActive=false keeps the record fetchable
// by ID while excluding it from active listings.
type Patient struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"type:varchar(50);not null;index" json:"first_name"`
	LastName    string    `gorm:"type:varchar(50);not null;index" json:"last_name"`
	MiddleName  string    `gorm:"type:varchar(50)" json:"middle_name,omitempty"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      Gender    `gorm:"type:varchar(10);not null" json:"gender"`
	Phone       string    `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`

	BloodType             BloodType `gorm:"type:varchar(3)" json:"blood_type,omitempty"`
	Allergies             string    `gorm:"type:text" json:"allergies,omitempty"`
	ChronicDiseases       string    `gorm:"type:text" json:"chronic_diseases,omitempty"`
	EmergencyContactName  string    `gorm:"type:varchar(100)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`

	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Visits        []Visit        `gorm:"foreignKey:PatientID" json:"visits,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:PatientID" json:"prescriptions,omitempty"`
	Surgeries     []Surgery      `gorm:"foreignKey:PatientID" json:"surgeries,omitempty"`
	Billings      []Billing      `gorm:"foreignKey:PatientID" json:"billings,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName renders "Last [Middle] First", the registry convention
func (p *Patient) FullName() string {
	parts := []string{p.LastName}
	if p.MiddleName != "" {
		parts = append(parts, p.MiddleName)
	}
	parts = append(parts, p.FirstName)
	return strings.Join(parts, " ")
}
