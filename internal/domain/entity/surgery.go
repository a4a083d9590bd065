package entity

import (
	"time"
)

// Surgery records an operation performed on a patient by a surgeon
type Surgery struct {
	ID        int `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int `gorm:"not null;index" json:"patient_id"`
	SurgeonID int `gorm:"not null;index" json:"surgeon_id"`

	OperationName string     `gorm:"type:varchar(255);not null" json:"operation_name"`
	OperationDate time.Time  `gorm:"not null;index" json:"operation_date"`
	StartTime     time.Time  `gorm:"not null" json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`

	PreOpDays  int `json:"pre_op_days,omitempty"`
	PostOpDays int `json:"post_op_days,omitempty"`

	Notes         string `gorm:"type:text" json:"notes,omitempty"`
	Complications string `gorm:"type:text" json:"complications,omitempty"`
	Outcome       string `gorm:"type:varchar(100)" json:"outcome,omitempty"`

	// Free-form extras (implants used, anesthesia protocol, ...)
	AdditionalData map[string]any `gorm:"serializer:json;type:jsonb" json:"additional_data,omitempty"`

	CreatedBy int       `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Surgeon User    `gorm:"foreignKey:SurgeonID" json:"surgeon,omitempty"`
	Creator User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Surgery) TableName() string {
	return "surgeries"
}
