package repository

import (
	"medicore/internal/domain/entity"

	"gorm.io/gorm"
)

type BillingRepository interface {
	Create(db *gorm.DB, billing *entity.Billing) error
	FindByID(db *gorm.DB, id int) (*entity.Billing, error)
	FindAll(db *gorm.DB, filter entity.BillingFilter) ([]entity.Billing, error)
	FindByPatient(db *gorm.DB, patientID, skip, limit int) ([]entity.Billing, error)
	Update(db *gorm.DB, billing *entity.Billing) error
	Delete(db *gorm.DB, billing *entity.Billing) error
}
