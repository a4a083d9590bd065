package repository

import (
	"time"

	"medicore/internal/domain/entity"

	"gorm.io/gorm"
)

type SurgeryRepository interface {
	Create(db *gorm.DB, surgery *entity.Surgery) error
	FindByID(db *gorm.DB, id int) (*entity.Surgery, error)
	FindAll(db *gorm.DB, filter entity.SurgeryFilter) ([]entity.Surgery, error)
	FindUpcoming(db *gorm.DB, limit int) ([]entity.Surgery, error)
	FindRecent(db *gorm.DB, since time.Time, limit int) ([]entity.Surgery, error)
	FindByPatient(db *gorm.DB, patientID, skip, limit int) ([]entity.Surgery, error)
	FindBySurgeon(db *gorm.DB, surgeonID, skip, limit int) ([]entity.Surgery, error)
	Update(db *gorm.DB, surgery *entity.Surgery) error
	Delete(db *gorm.DB, surgery *entity.Surgery) error
	CountAll(db *gorm.DB) (int64, error)
	CountOperationDateSince(db *gorm.DB, since time.Time) (int64, error)
	CountCreatedBetween(db *gorm.DB, start, end time.Time) (int64, error)
}
