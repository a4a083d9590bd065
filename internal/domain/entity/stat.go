package entity

import (
	"time"
)

// StatType groups cached counters by the subsystem they describe
type StatType string

const (
	StatTypeUsers         StatType = "users"
	StatTypePatients      StatType = "patients"
	StatTypeAppointments  StatType = "appointments"
	StatTypeVisits        StatType = "visits"
	StatTypePrescriptions StatType = "prescriptions"
	StatTypeSurgeries     StatType = "surgeries"
	StatTypeMonthly       StatType = "monthly"
)

// SystemStat is a denormalized cache entry keyed by (stat_type,
// stat_key). It is never authoritative: every value can be rebuilt
// from the primary entities via the refresh operation.
type SystemStat struct {
	ID       int      `gorm:"primaryKey;autoIncrement" json:"id"`
	StatType StatType `gorm:"type:varchar(30);not null;uniqueIndex:idx_stat_type_key" json:"stat_type"`
	StatKey  string   `gorm:"type:varchar(100);not null;uniqueIndex:idx_stat_type_key" json:"stat_key"`

	IntValue   *int64   `json:"int_value,omitempty"`
	FloatValue *float64 `json:"float_value,omitempty"`
	TextValue  string   `gorm:"type:text" json:"text_value,omitempty"`

	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
	Description string     `gorm:"type:varchar(255)" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SystemStat) TableName() string {
	return "system_stats"
}

// DashboardStat configures one card on the admin dashboard
type DashboardStat struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string `gorm:"type:varchar(100);not null" json:"title"`
	StatKey  string `gorm:"type:varchar(100);not null" json:"stat_key"`
	Icon     string `gorm:"type:varchar(50)" json:"icon,omitempty"`
	Position int    `gorm:"not null;default:0" json:"position"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DashboardStat) TableName() string {
	return "dashboard_stats"
}
