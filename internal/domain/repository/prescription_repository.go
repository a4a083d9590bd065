package repository

import (
	"time"

	"medicore/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id int) (*entity.Prescription, error)
	FindAll(db *gorm.DB, filter entity.PrescriptionFilter) ([]entity.Prescription, error)
	FindActive(db *gorm.DB, patientID int, limit int) ([]entity.Prescription, error)
	Update(db *gorm.DB, prescription *entity.Prescription) error
	Delete(db *gorm.DB, prescription *entity.Prescription) error

	AddMedication(db *gorm.DB, medication *entity.Medication) error
	FindMedicationByID(db *gorm.DB, id int) (*entity.Medication, error)
	UpdateMedication(db *gorm.DB, medication *entity.Medication) error
	DeleteMedication(db *gorm.DB, medication *entity.Medication) error

	CountAll(db *gorm.DB) (int64, error)
	CountActive(db *gorm.DB) (int64, error)
	CountPrescriptionDateBetween(db *gorm.DB, start, end time.Time) (int64, error)
}
