package repository

import (
	"time"

	"medicore/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindAll(db *gorm.DB, skip, limit int, search string) ([]entity.Patient, error)
	FindActive(db *gorm.DB, skip, limit int) ([]entity.Patient, error)
	SearchByName(db *gorm.DB, query string, limit int) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	SoftDelete(db *gorm.DB, patient *entity.Patient) error
	CountAll(db *gorm.DB) (int64, error)
	CountActive(db *gorm.DB) (int64, error)
	CountCreatedBetween(db *gorm.DB, start, end time.Time) (int64, error)
}
