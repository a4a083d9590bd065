package repository

import (
	"errors"

	"medicore/internal/domain/entity"
	domainRepo "medicore/internal/domain/repository"

	"gorm.io/gorm"
)

type billingRepository struct{}

func NewBillingRepository() domainRepo.BillingRepository {
	return &billingRepository{}
}

func (r *billingRepository) Create(db *gorm.DB, billing *entity.Billing) error {
	return db.Create(billing).Error
}

func (r *billingRepository) FindByID(db *gorm.DB, id int) (*entity.Billing, error) {
	var billing entity.Billing
	err := db.Where("id = ?", id).First(&billing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &billing, nil
}

func (r *billingRepository) FindAll(db *gorm.DB, filter entity.BillingFilter) ([]entity.Billing, error) {
	var billings []entity.Billing
	query := db.Model(&entity.Billing{})
	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	err := query.Order("created_at DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&billings).Error
	if err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *billingRepository) FindByPatient(db *gorm.DB, patientID, skip, limit int) ([]entity.Billing, error) {
	var billings []entity.Billing
	err := db.Where("patient_id = ?", patientID).
		Order("created_at DESC").Offset(skip).Limit(limit).
		Find(&billings).Error
	if err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *billingRepository) Update(db *gorm.DB, billing *entity.Billing) error {
	return db.Save(billing).Error
}

func (r *billingRepository) Delete(db *gorm.DB, billing *entity.Billing) error {
	return db.Delete(billing).Error
}
