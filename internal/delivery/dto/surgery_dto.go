package dto

import (
	"time"
)

type CreateSurgeryRequest struct {
	PatientID int `json:"patient_id" validate:"required,gt=0"`
	SurgeonID int `json:"surgeon_id" validate:"required,gt=0"`

	OperationName string     `json:"operation_name" validate:"required,max=255"`
	OperationDate string     `json:"operation_date" validate:"required,datetime=2006-01-02"`
	StartTime     time.Time  `json:"start_time" validate:"required"`
	EndTime       *time.Time `json:"end_time,omitempty"`

	PreOpDays  int `json:"pre_op_days,omitempty" validate:"omitempty,gte=0"`
	PostOpDays int `json:"post_op_days,omitempty" validate:"omitempty,gte=0"`

	Notes         string `json:"notes,omitempty"`
	Complications string `json:"complications,omitempty"`
	Outcome       string `json:"outcome,omitempty" validate:"omitempty,max=100"`

	AdditionalData map[string]any `json:"additional_data,omitempty"`
}

type UpdateSurgeryRequest struct {
	OperationName *string    `json:"operation_name,omitempty" validate:"omitempty,max=255"`
	OperationDate *string    `json:"operation_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`

	PreOpDays  *int `json:"pre_op_days,omitempty" validate:"omitempty,gte=0"`
	PostOpDays *int `json:"post_op_days,omitempty" validate:"omitempty,gte=0"`

	Notes         *string `json:"notes,omitempty"`
	Complications *string `json:"complications,omitempty"`
	Outcome       *string `json:"outcome,omitempty" validate:"omitempty,max=100"`

	AdditionalData map[string]any `json:"additional_data,omitempty"`
}

type SurgeryResponse struct {
	ID        int `json:"id"`
	PatientID int `json:"patient_id"`
	SurgeonID int `json:"surgeon_id"`

	PatientName string `json:"patient_name,omitempty"`
	SurgeonName string `json:"surgeon_name,omitempty"`

	OperationName string     `json:"operation_name"`
	OperationDate time.Time  `json:"operation_date"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`

	PreOpDays  int `json:"pre_op_days,omitempty"`
	PostOpDays int `json:"post_op_days,omitempty"`

	Notes         string `json:"notes,omitempty"`
	Complications string `json:"complications,omitempty"`
	Outcome       string `json:"outcome,omitempty"`

	AdditionalData map[string]any `json:"additional_data,omitempty"`

	CreatedBy int       `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SurgeryListResponse struct {
	Surgeries []SurgeryResponse `json:"surgeries"`
	Total     int               `json:"total"`
}
