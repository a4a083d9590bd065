package usecase

import (
	"context"
	"errors"
	"time"

	"medicore/internal/converter"
	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
	"medicore/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrPastScheduledDate    = errors.New("scheduled date must be in the future")
	ErrSlotConflict         = errors.New("doctor already has an appointment in this time slot")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAppointmentFinalized = errors.New("appointment is in a terminal status")
)

const defaultDurationMinutes = 30

// VisitCreator derives a clinical visit from a completed appointment.
// It runs inside the caller's transaction so the status change and
// the derived visit commit or roll back together.
type VisitCreator interface {
	CreateFromAppointment(tx *gorm.DB, appointment *entity.Appointment, completedBy int) (*entity.Visit, error)
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest, createdBy int) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	List(ctx context.Context, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	ListUpcoming(ctx context.Context, doctorID, limit int) ([]dto.AppointmentResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id int) error

	Confirm(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, id int, completedBy int) (*dto.AppointmentResponse, error)
	MarkNoShow(ctx context.Context, id int) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	userRepo        repository.UserRepository
	visitRepo       repository.VisitRepository
	visitCreator    VisitCreator
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	visitRepo repository.VisitRepository,
	visitCreator VisitCreator,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		userRepo:        userRepo,
		visitRepo:       visitRepo,
		visitCreator:    visitCreator,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest, createdBy int) (*dto.AppointmentResponse, error) {
	if !req.ScheduledDate.After(time.Now()) {
		return nil, ErrPastScheduledDate
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = defaultDurationMinutes
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.userRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil || doctor.Role != entity.RoleDoctor {
		return nil, ErrDoctorNotFound
	}

	// A concurrent booking for the same doctor waits here until this
	// transaction commits, then its candidate scan sees this row.
	if err := u.appointmentRepo.LockDoctorSchedule(tx, req.DoctorID); err != nil {
		u.log.Warnf("Failed to lock doctor schedule: %+v", err)
		return nil, err
	}

	candidates, err := u.appointmentRepo.FindSlotCandidates(tx, req.DoctorID, req.ScheduledDate, duration)
	if err != nil {
		u.log.Warnf("Failed to load slot candidates: %+v", err)
		return nil, err
	}
	if conflict := entity.FindSlotConflict(candidates, req.ScheduledDate, duration, 0); conflict != nil {
		return nil, ErrSlotConflict
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentType: entity.AppointmentType(req.AppointmentType),
		Status:          entity.AppointmentScheduled,
		ScheduledDate:   req.ScheduledDate,
		DurationMinutes: duration,
		Reason:          req.Reason,
		Notes:           req.Notes,
		Symptoms:        req.Symptoms,
		CreatedBy:       createdBy,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	response := converter.AppointmentToResponse(appointment)

	if appointment.Status == entity.AppointmentCompleted {
		visit, err := u.visitRepo.FindByAppointmentID(db, appointment.ID)
		if err != nil {
			u.log.Warnf("Failed to find derived visit: %+v", err)
			return nil, err
		}
		if visit != nil {
			response.VisitID = &visit.ID
		}
	}

	return response, nil
}

func (u *appointmentUsecase) List(ctx context.Context, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListUpcoming(ctx context.Context, doctorID, limit int) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindUpcoming(u.db.WithContext(ctx), doctorID, limit)
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.Status.IsTerminal() {
		return nil, ErrAppointmentFinalized
	}

	newStart := appointment.ScheduledDate
	newDuration := appointment.DurationMinutes
	reschedule := false

	if req.ScheduledDate != nil {
		if !req.ScheduledDate.After(time.Now()) {
			return nil, ErrPastScheduledDate
		}
		newStart = *req.ScheduledDate
		reschedule = true
	}
	if req.DurationMinutes != nil {
		newDuration = *req.DurationMinutes
		reschedule = true
	}

	if reschedule {
		if err := u.appointmentRepo.LockDoctorSchedule(tx, appointment.DoctorID); err != nil {
			u.log.Warnf("Failed to lock doctor schedule: %+v", err)
			return nil, err
		}

		candidates, err := u.appointmentRepo.FindSlotCandidates(tx, appointment.DoctorID, newStart, newDuration)
		if err != nil {
			u.log.Warnf("Failed to load slot candidates: %+v", err)
			return nil, err
		}
		if conflict := entity.FindSlotConflict(candidates, newStart, newDuration, appointment.ID); conflict != nil {
			return nil, ErrSlotConflict
		}
		appointment.ScheduledDate = newStart
		appointment.DurationMinutes = newDuration
	}

	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.Symptoms != nil {
		appointment.Symptoms = *req.Symptoms
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(tx, appointment); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) Confirm(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentConfirmed, 0)
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentCancelled, 0)
}

func (u *appointmentUsecase) Complete(ctx context.Context, id int, completedBy int) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentCompleted, completedBy)
}

func (u *appointmentUsecase) MarkNoShow(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentNoShow, 0)
}

func (u *appointmentUsecase) transition(ctx context.Context, id int, next entity.AppointmentStatus, completedBy int) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	appointment.Status = next

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	var visitID *int
	if next == entity.AppointmentCompleted {
		visit, err := u.visitCreator.CreateFromAppointment(tx, appointment, completedBy)
		if err != nil {
			u.log.Warnf("Failed to derive visit from appointment: %+v", err)
			return nil, err
		}
		visitID = &visit.ID
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	response.VisitID = visitID
	return response, nil
}
