package repository

import (
	"errors"
	"time"

	"medicore/internal/domain/entity"
	domainRepo "medicore/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB, skip, limit int, search string) ([]entity.Patient, error) {
	var patients []entity.Patient
	query := db.Model(&entity.Patient{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ?",
			like, like, like,
		)
	}
	err := query.Order("id").Offset(skip).Limit(limit).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindActive(db *gorm.DB, skip, limit int) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Where("is_active = ?", true).
		Order("id").Offset(skip).Limit(limit).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) SearchByName(db *gorm.DB, query string, limit int) ([]entity.Patient, error) {
	var patients []entity.Patient
	like := "%" + query + "%"
	err := db.Where("first_name ILIKE ? OR last_name ILIKE ?", like, like).
		Limit(limit).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

// SoftDelete flags the patient inactive; the row stays fetchable by ID
func (r *patientRepository) SoftDelete(db *gorm.DB, patient *entity.Patient) error {
	patient.IsActive = false
	return db.Model(patient).Update("is_active", false).Error
}

func (r *patientRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Count(&count).Error
	return count, err
}

func (r *patientRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *patientRepository) CountCreatedBetween(db *gorm.DB, start, end time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}
