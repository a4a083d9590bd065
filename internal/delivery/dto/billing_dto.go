package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBillingRequest struct {
	PatientID      int             `json:"patient_id" validate:"required,gt=0"`
	AppointmentID  *int            `json:"appointment_id,omitempty" validate:"omitempty,gt=0"`
	PrescriptionID *int            `json:"prescription_id,omitempty" validate:"omitempty,gt=0"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	Description    string          `json:"description,omitempty" validate:"omitempty,max=255"`
}

type UpdateBillingRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=255"`
}

type BillingResponse struct {
	ID             int             `json:"id"`
	PatientID      int             `json:"patient_id"`
	AppointmentID  *int            `json:"appointment_id,omitempty"`
	PrescriptionID *int            `json:"prescription_id,omitempty"`
	PatientName    string          `json:"patient_name,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	Description    string          `json:"description,omitempty"`
	PaymentDate    *time.Time      `json:"payment_date,omitempty"`
	CreatedBy      int             `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type BillingListResponse struct {
	Billings []BillingResponse `json:"billings"`
	Total    int               `json:"total"`
}
