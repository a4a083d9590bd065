package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingStatus state machine:
//
//	pending → paid
//
// cancelled and overdue are terminal; overdue may still be paid.
type BillingStatus string

const (
	BillingPending   BillingStatus = "pending"
	BillingPaid      BillingStatus = "paid"
	BillingCancelled BillingStatus = "cancelled"
	BillingOverdue   BillingStatus = "overdue"
)

var billingTransitions = map[BillingStatus][]BillingStatus{
	BillingPending:   {BillingPaid, BillingCancelled, BillingOverdue},
	BillingOverdue:   {BillingPaid, BillingCancelled},
	BillingPaid:      {},
	BillingCancelled: {},
}

func (s BillingStatus) IsValid() bool {
	_, ok := billingTransitions[s]
	return ok
}

func (s BillingStatus) CanTransitionTo(next BillingStatus) bool {
	for _, allowed := range billingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Billing is an invoice for a patient, optionally tied to the
// appointment or prescription that produced the charge
type Billing struct {
	ID             int  `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int  `gorm:"not null;index" json:"patient_id"`
	AppointmentID  *int `gorm:"index" json:"appointment_id,omitempty"`
	PrescriptionID *int `gorm:"index" json:"prescription_id,omitempty"`

	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status      BillingStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Description string          `gorm:"type:varchar(255)" json:"description,omitempty"`

	PaymentDate *time.Time `json:"payment_date,omitempty"`

	CreatedBy int       `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      Patient       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment  *Appointment  `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Prescription *Prescription `gorm:"foreignKey:PrescriptionID" json:"prescription,omitempty"`
}

func (Billing) TableName() string {
	return "billing"
}
