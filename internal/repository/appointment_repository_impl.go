package repository

import (
	"errors"
	"time"

	"medicore/internal/domain/entity"
	domainRepo "medicore/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Patient").Preload("Doctor")
	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.DoctorID != 0 {
		query = query.Where("doctor_id = ?", filter.DoctorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("scheduled_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("scheduled_date <= ?", *filter.DateTo)
	}
	err := query.Order("scheduled_date").Offset(filter.Skip).Limit(filter.Limit).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcoming(db *gorm.DB, doctorID int, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Patient").Preload("Doctor").
		Where("scheduled_date >= ?", time.Now()).
		Where("status IN ?", []entity.AppointmentStatus{entity.AppointmentScheduled, entity.AppointmentConfirmed})
	if doctorID != 0 {
		query = query.Where("doctor_id = ?", doctorID)
	}
	err := query.Order("scheduled_date").Limit(limit).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindSlotCandidates narrows by a window wide enough to contain any
// appointment that could overlap [start, start+duration). The exact
// half-open interval test runs in the domain layer.
func (r *appointmentRepository) FindSlotCandidates(db *gorm.DB, doctorID int, start time.Time, durationMinutes int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	windowStart := start.Add(-24 * time.Hour)
	err := db.
		Where("doctor_id = ?", doctorID).
		Where("status IN ?", []entity.AppointmentStatus{
			entity.AppointmentScheduled, entity.AppointmentConfirmed, entity.AppointmentInProgress,
		}).
		Where("scheduled_date < ? AND scheduled_date >= ?", end, windowStart).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Delete(appointment).Error
}

func (r *appointmentRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountUpcoming(db *gorm.DB, after time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("scheduled_date >= ?", after).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountCreatedBetween(db *gorm.DB, start, end time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}
