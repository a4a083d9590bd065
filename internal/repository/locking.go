package repository

import (
	"gorm.io/gorm"
)

// Advisory lock class for per-doctor schedule serialization
const doctorScheduleLockClass = 7201

// LockDoctorSchedule takes a transaction-scoped advisory lock keyed by
// doctor ID, released automatically at commit or rollback. Row locks
// on existing appointments cannot serialize two bookings into a slot
// that has no rows yet, so the availability check itself must be
// mutually exclusive per doctor.
func (r *appointmentRepository) LockDoctorSchedule(db *gorm.DB, doctorID int) error {
	return db.Exec("SELECT pg_advisory_xact_lock(?, ?)", doctorScheduleLockClass, doctorID).Error
}
