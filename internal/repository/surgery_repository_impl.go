package repository

import (
	"errors"
	"time"

	"medicore/internal/domain/entity"
	domainRepo "medicore/internal/domain/repository"

	"gorm.io/gorm"
)

type surgeryRepository struct{}

func NewSurgeryRepository() domainRepo.SurgeryRepository {
	return &surgeryRepository{}
}

func (r *surgeryRepository) Create(db *gorm.DB, surgery *entity.Surgery) error {
	return db.Create(surgery).Error
}

func (r *surgeryRepository) FindByID(db *gorm.DB, id int) (*entity.Surgery, error) {
	var surgery entity.Surgery
	err := db.Preload("Patient").Preload("Surgeon").Where("id = ?", id).First(&surgery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &surgery, nil
}

func (r *surgeryRepository) FindAll(db *gorm.DB, filter entity.SurgeryFilter) ([]entity.Surgery, error) {
	var surgeries []entity.Surgery
	query := db.Model(&entity.Surgery{})
	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.SurgeonID != 0 {
		query = query.Where("surgeon_id = ?", filter.SurgeonID)
	}
	if filter.StartDate != nil {
		query = query.Where("operation_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("operation_date <= ?", *filter.EndDate)
	}
	err := query.Order("operation_date DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&surgeries).Error
	if err != nil {
		return nil, err
	}
	return surgeries, nil
}

func (r *surgeryRepository) FindUpcoming(db *gorm.DB, limit int) ([]entity.Surgery, error) {
	var surgeries []entity.Surgery
	err := db.Where("operation_date >= ?", time.Now()).
		Order("operation_date").Limit(limit).
		Find(&surgeries).Error
	if err != nil {
		return nil, err
	}
	return surgeries, nil
}

func (r *surgeryRepository) FindRecent(db *gorm.DB, since time.Time, limit int) ([]entity.Surgery, error) {
	var surgeries []entity.Surgery
	err := db.Where("operation_date >= ? AND operation_date < ?", since, time.Now()).
		Order("operation_date DESC").Limit(limit).
		Find(&surgeries).Error
	if err != nil {
		return nil, err
	}
	return surgeries, nil
}

func (r *surgeryRepository) FindByPatient(db *gorm.DB, patientID, skip, limit int) ([]entity.Surgery, error) {
	var surgeries []entity.Surgery
	err := db.Where("patient_id = ?", patientID).
		Order("operation_date DESC").Offset(skip).Limit(limit).
		Find(&surgeries).Error
	if err != nil {
		return nil, err
	}
	return surgeries, nil
}

func (r *surgeryRepository) FindBySurgeon(db *gorm.DB, surgeonID, skip, limit int) ([]entity.Surgery, error) {
	var surgeries []entity.Surgery
	err := db.Where("surgeon_id = ?", surgeonID).
		Order("operation_date DESC").Offset(skip).Limit(limit).
		Find(&surgeries).Error
	if err != nil {
		return nil, err
	}
	return surgeries, nil
}

func (r *surgeryRepository) Update(db *gorm.DB, surgery *entity.Surgery) error {
	return db.Save(surgery).Error
}

func (r *surgeryRepository) Delete(db *gorm.DB, surgery *entity.Surgery) error {
	return db.Delete(surgery).Error
}

func (r *surgeryRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Surgery{}).Count(&count).Error
	return count, err
}

func (r *surgeryRepository) CountOperationDateSince(db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Surgery{}).Where("operation_date >= ?", since).Count(&count).Error
	return count, err
}

func (r *surgeryRepository) CountCreatedBetween(db *gorm.DB, start, end time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Surgery{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}
