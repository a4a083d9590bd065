package repository

import (
	"errors"
	"time"

	"medicore/internal/domain/entity"
	domainRepo "medicore/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id int) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Preload("Medications").Where("id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindAll(db *gorm.DB, filter entity.PrescriptionFilter) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	query := db.Preload("Medications")
	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.DoctorID != 0 {
		query = query.Where("doctor_id = ?", filter.DoctorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	err := query.Order("prescription_date DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindActive(db *gorm.DB, patientID int, limit int) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	query := db.Preload("Medications").Where("status = ?", entity.PrescriptionActive)
	if patientID != 0 {
		query = query.Where("patient_id = ?", patientID)
	}
	err := query.Order("prescription_date DESC").Limit(limit).Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Update(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Save(prescription).Error
}

// Delete removes the prescription together with its medication lines
func (r *prescriptionRepository) Delete(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Select("Medications").Delete(prescription).Error
}

func (r *prescriptionRepository) AddMedication(db *gorm.DB, medication *entity.Medication) error {
	return db.Create(medication).Error
}

func (r *prescriptionRepository) FindMedicationByID(db *gorm.DB, id int) (*entity.Medication, error) {
	var medication entity.Medication
	err := db.Where("id = ?", id).First(&medication).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medication, nil
}

func (r *prescriptionRepository) UpdateMedication(db *gorm.DB, medication *entity.Medication) error {
	return db.Save(medication).Error
}

func (r *prescriptionRepository) DeleteMedication(db *gorm.DB, medication *entity.Medication) error {
	return db.Delete(medication).Error
}

func (r *prescriptionRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Prescription{}).Count(&count).Error
	return count, err
}

func (r *prescriptionRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Prescription{}).
		Where("status = ?", entity.PrescriptionActive).
		Count(&count).Error
	return count, err
}

func (r *prescriptionRepository) CountPrescriptionDateBetween(db *gorm.DB, start, end time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Prescription{}).
		Where("prescription_date >= ? AND prescription_date < ?", start, end).
		Count(&count).Error
	return count, err
}
