package repository

import (
	"errors"
	"time"

	"medicore/internal/domain/entity"
	domainRepo "medicore/internal/domain/repository"

	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Create(db *gorm.DB, visit *entity.Visit) error {
	return db.Create(visit).Error
}

func (r *visitRepository) FindByID(db *gorm.DB, id int) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.Preload("Diagnoses").Preload("Treatments").Preload("VitalSigns").
		Where("id = ?", id).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.Where("appointment_id = ?", appointmentID).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindAll(db *gorm.DB, filter entity.VisitFilter) ([]entity.Visit, error) {
	var visits []entity.Visit
	query := db.Model(&entity.Visit{})
	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.DoctorID != 0 {
		query = query.Where("doctor_id = ?", filter.DoctorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	err := query.Order("visit_date DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) FindUpcoming(db *gorm.DB, doctorID int, limit int) ([]entity.Visit, error) {
	var visits []entity.Visit
	query := db.
		Where("visit_date >= ?", time.Now()).
		Where("status IN ?", []entity.VisitStatus{entity.VisitScheduled, entity.VisitInProgress})
	if doctorID != 0 {
		query = query.Where("doctor_id = ?", doctorID)
	}
	err := query.Order("visit_date").Limit(limit).Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) Update(db *gorm.DB, visit *entity.Visit) error {
	return db.Save(visit).Error
}

func (r *visitRepository) Delete(db *gorm.DB, visit *entity.Visit) error {
	return db.Select("Diagnoses", "Treatments", "VitalSigns").Delete(visit).Error
}

func (r *visitRepository) AddDiagnosis(db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.Create(diagnosis).Error
}

func (r *visitRepository) AddTreatment(db *gorm.DB, treatment *entity.Treatment) error {
	return db.Create(treatment).Error
}

func (r *visitRepository) FindVitalSigns(db *gorm.DB, visitID int) (*entity.VitalSigns, error) {
	var vitalSigns entity.VitalSigns
	err := db.Where("visit_id = ?", visitID).First(&vitalSigns).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vitalSigns, nil
}

func (r *visitRepository) AddVitalSigns(db *gorm.DB, vitalSigns *entity.VitalSigns) error {
	return db.Create(vitalSigns).Error
}

func (r *visitRepository) DeleteVitalSigns(db *gorm.DB, vitalSigns *entity.VitalSigns) error {
	return db.Delete(vitalSigns).Error
}

func (r *visitRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Visit{}).Count(&count).Error
	return count, err
}

func (r *visitRepository) CountVisitDateSince(db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Visit{}).Where("visit_date >= ?", since).Count(&count).Error
	return count, err
}

func (r *visitRepository) CountVisitDateBetween(db *gorm.DB, start, end time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Visit{}).
		Where("visit_date >= ? AND visit_date < ?", start, end).
		Count(&count).Error
	return count, err
}
