package repository

import (
	"time"

	"medicore/internal/domain/entity"

	"gorm.io/gorm"
)

type VisitRepository interface {
	Create(db *gorm.DB, visit *entity.Visit) error
	FindByID(db *gorm.DB, id int) (*entity.Visit, error)
	FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.Visit, error)
	FindAll(db *gorm.DB, filter entity.VisitFilter) ([]entity.Visit, error)
	FindUpcoming(db *gorm.DB, doctorID int, limit int) ([]entity.Visit, error)
	Update(db *gorm.DB, visit *entity.Visit) error
	Delete(db *gorm.DB, visit *entity.Visit) error

	AddDiagnosis(db *gorm.DB, diagnosis *entity.Diagnosis) error
	AddTreatment(db *gorm.DB, treatment *entity.Treatment) error
	FindVitalSigns(db *gorm.DB, visitID int) (*entity.VitalSigns, error)
	AddVitalSigns(db *gorm.DB, vitalSigns *entity.VitalSigns) error
	DeleteVitalSigns(db *gorm.DB, vitalSigns *entity.VitalSigns) error

	CountAll(db *gorm.DB) (int64, error)
	CountVisitDateSince(db *gorm.DB, since time.Time) (int64, error)
	CountVisitDateBetween(db *gorm.DB, start, end time.Time) (int64, error)
}
