package repository

import (
	"time"

	"medicore/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	FindUpcoming(db *gorm.DB, doctorID int, limit int) ([]entity.Appointment, error)
	// LockDoctorSchedule serializes bookings for one doctor within the
	// current transaction. Must be taken before FindSlotCandidates.
	LockDoctorSchedule(db *gorm.DB, doctorID int) error
	// FindSlotCandidates returns the doctor's appointments that still
	// block a slot and could intersect [start, start+duration); the
	// caller runs the exact overlap test.
	FindSlotCandidates(db *gorm.DB, doctorID int, start time.Time, durationMinutes int) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, appointment *entity.Appointment) error
	CountAll(db *gorm.DB) (int64, error)
	CountUpcoming(db *gorm.DB, after time.Time) (int64, error)
	CountCreatedBetween(db *gorm.DB, start, end time.Time) (int64, error)
}
