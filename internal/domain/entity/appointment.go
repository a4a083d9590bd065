package entity

import (
	"time"
)

// AppointmentStatus state machine:
//
//	scheduled → confirmed → in_progress → completed
//
// cancelled and no_show are terminal and reachable from any
// non-terminal state.
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
	AppointmentNoShow     AppointmentStatus = "no_show"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentScheduled:  {AppointmentConfirmed, AppointmentInProgress, AppointmentCancelled, AppointmentNoShow},
	AppointmentConfirmed:  {AppointmentInProgress, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow},
	AppointmentInProgress: {AppointmentCompleted, AppointmentCancelled, AppointmentNoShow},
	AppointmentCompleted:  {},
	AppointmentCancelled:  {},
	AppointmentNoShow:     {},
}

func (s AppointmentStatus) IsValid() bool {
	_, ok := appointmentTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are possible
func (s AppointmentStatus) IsTerminal() bool {
	return len(appointmentTransitions[s]) == 0
}

// CanTransitionTo consults the transition table
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BlocksSlot reports whether an appointment in this status still
// occupies its doctor's time slot for conflict detection.
func (s AppointmentStatus) BlocksSlot() bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress:
		return true
	}
	return false
}

type AppointmentType string

const (
	AppointmentConsultation AppointmentType = "consultation"
	AppointmentExamination  AppointmentType = "examination"
	AppointmentProcedure    AppointmentType = "procedure"
	AppointmentSurgery      AppointmentType = "surgery"
	AppointmentFollowUp     AppointmentType = "follow_up"
	AppointmentEmergency    AppointmentType = "emergency"
)

func (t AppointmentType) IsValid() bool {
	switch t {
	case AppointmentConsultation, AppointmentExamination, AppointmentProcedure,
		AppointmentSurgery, AppointmentFollowUp, AppointmentEmergency:
		return true
	}
	return false
}

// Appointment is a booked slot in a doctor's calendar
type Appointment struct {
	ID        int `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int `gorm:"not null;index" json:"patient_id"`
	DoctorID  int `gorm:"not null;index" json:"doctor_id"`

	AppointmentType AppointmentType   `gorm:"type:varchar(20);not null" json:"appointment_type"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`

	ScheduledDate   time.Time `gorm:"not null;index" json:"scheduled_date"`
	DurationMinutes int       `gorm:"not null;default:30" json:"duration_minutes"`

	Reason   string `gorm:"type:varchar(255)" json:"reason,omitempty"`
	Notes    string `gorm:"type:text" json:"notes,omitempty"`
	Symptoms string `gorm:"type:text" json:"symptoms,omitempty"`

	CreatedBy int       `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Creator User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// EndsAt is the exclusive end of the appointment's interval
func (a *Appointment) EndsAt() time.Time {
	return a.ScheduledDate.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Overlaps tests half-open interval intersection between this
// appointment and [start, start+duration).
func (a *Appointment) Overlaps(start time.Time, durationMinutes int) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return a.ScheduledDate.Before(end) && start.Before(a.EndsAt())
}

// FindSlotConflict returns the first appointment among candidates that
// still blocks its slot and overlaps [start, start+duration),
// excluding the appointment with excludeID (0 to exclude none).
func FindSlotConflict(candidates []Appointment, start time.Time, durationMinutes, excludeID int) *Appointment {
	for i := range candidates {
		a := &candidates[i]
		if a.ID == excludeID {
			continue
		}
		if !a.Status.BlocksSlot() {
			continue
		}
		if a.Overlaps(start, durationMinutes) {
			return a
		}
	}
	return nil
}
