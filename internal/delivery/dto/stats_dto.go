package dto

import (
	"time"
)

type EntityCountResponse struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active,omitempty"`
	Recent int64 `json:"recent,omitempty"`
}

type AppointmentCountResponse struct {
	Total    int64 `json:"total"`
	Upcoming int64 `json:"upcoming"`
}

type SummaryResponse struct {
	Users         EntityCountResponse      `json:"users"`
	Patients      EntityCountResponse      `json:"patients"`
	Appointments  AppointmentCountResponse `json:"appointments"`
	Visits        EntityCountResponse      `json:"visits"`
	Prescriptions EntityCountResponse      `json:"prescriptions"`
	Surgeries     EntityCountResponse      `json:"surgeries"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

type MonthlyStatsResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	NewPatients   int64 `json:"new_patients"`
	Appointments  int64 `json:"appointments"`
	Visits        int64 `json:"visits"`
	Surgeries     int64 `json:"surgeries"`
	Prescriptions int64 `json:"prescriptions"`
}

type ChartPointResponse struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

type ChartSeriesResponse struct {
	Name   string               `json:"name"`
	Points []ChartPointResponse `json:"points"`
}

type RefreshStatsResponse struct {
	Updated     int       `json:"updated"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

type CreateDashboardStatRequest struct {
	Title    string `json:"title" validate:"required,max=100"`
	StatKey  string `json:"stat_key" validate:"required,max=100"`
	Icon     string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Position int    `json:"position,omitempty" validate:"omitempty,gte=0"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type UpdateDashboardStatRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=100"`
	StatKey  *string `json:"stat_key,omitempty" validate:"omitempty,max=100"`
	Icon     *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Position *int    `json:"position,omitempty" validate:"omitempty,gte=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type DashboardStatResponse struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	StatKey   string    `json:"stat_key"`
	Icon      string    `json:"icon,omitempty"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
