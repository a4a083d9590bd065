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
	ErrBillingNotFound  = errors.New("billing record not found")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrBillingFinalized = errors.New("billing record is in a terminal status")
)

type BillingUsecase interface {
	Create(ctx context.Context, req *dto.CreateBillingRequest, createdBy int) (*dto.BillingResponse, error)
	GetByID(ctx context.Context, id int) (*dto.BillingResponse, error)
	List(ctx context.Context, filter entity.BillingFilter) (*dto.BillingListResponse, error)
	ListByPatient(ctx context.Context, patientID, skip, limit int) ([]dto.BillingResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateBillingRequest) (*dto.BillingResponse, error)
	Delete(ctx context.Context, id int) error
	Pay(ctx context.Context, id int) (*dto.BillingResponse, error)
	Cancel(ctx context.Context, id int) (*dto.BillingResponse, error)
	MarkOverdue(ctx context.Context, id int) (*dto.BillingResponse, error)
}

type billingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	billingRepo      repository.BillingRepository
	patientRepo      repository.PatientRepository
	appointmentRepo  repository.AppointmentRepository
	prescriptionRepo repository.PrescriptionRepository
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	billingRepo repository.BillingRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	prescriptionRepo repository.PrescriptionRepository,
) BillingUsecase {
	return &billingUsecase{
		db:               db,
		log:              log,
		billingRepo:      billingRepo,
		patientRepo:      patientRepo,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

func (u *billingUsecase) Create(ctx context.Context, req *dto.CreateBillingRequest, createdBy int) (*dto.BillingResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
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

	if req.AppointmentID != nil {
		appointment, err := u.appointmentRepo.FindByID(tx, *req.AppointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment by ID: %+v", err)
			return nil, err
		}
		if appointment == nil {
			return nil, ErrAppointmentNotFound
		}
	}

	if req.PrescriptionID != nil {
		prescription, err := u.prescriptionRepo.FindByID(tx, *req.PrescriptionID)
		if err != nil {
			u.log.Warnf("Failed to find prescription by ID: %+v", err)
			return nil, err
		}
		if prescription == nil {
			return nil, ErrPrescriptionNotFound
		}
	}

	billing := &entity.Billing{
		PatientID:      req.PatientID,
		AppointmentID:  req.AppointmentID,
		PrescriptionID: req.PrescriptionID,
		Amount:         req.Amount,
		Status:         entity.BillingPending,
		Description:    req.Description,
		CreatedBy:      createdBy,
	}

	if err := u.billingRepo.Create(tx, billing); err != nil {
		u.log.Warnf("Failed to create billing record: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	billing.Patient = *patient
	return converter.BillingToResponse(billing), nil
}

func (u *billingUsecase) GetByID(ctx context.Context, id int) (*dto.BillingResponse, error) {
	billing, err := u.billingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find billing record by ID: %+v", err)
		return nil, err
	}
	if billing == nil {
		return nil, ErrBillingNotFound
	}

	return converter.BillingToResponse(billing), nil
}

func (u *billingUsecase) List(ctx context.Context, filter entity.BillingFilter) (*dto.BillingListResponse, error) {
	billings, err := u.billingRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list billing records: %+v", err)
		return nil, err
	}

	return &dto.BillingListResponse{
		Billings: converter.BillingsToResponses(billings),
		Total:    len(billings),
	}, nil
}

func (u *billingUsecase) ListByPatient(ctx context.Context, patientID, skip, limit int) ([]dto.BillingResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	billings, err := u.billingRepo.FindByPatient(db, patientID, skip, limit)
	if err != nil {
		u.log.Warnf("Failed to list billing records by patient: %+v", err)
		return nil, err
	}

	return converter.BillingsToResponses(billings), nil
}

func (u *billingUsecase) Update(ctx context.Context, id int, req *dto.UpdateBillingRequest) (*dto.BillingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	billing, err := u.billingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record by ID: %+v", err)
		return nil, err
	}
	if billing == nil {
		return nil, ErrBillingNotFound
	}
	if billing.Status == entity.BillingPaid || billing.Status == entity.BillingCancelled {
		return nil, ErrBillingFinalized
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, ErrInvalidAmount
		}
		billing.Amount = *req.Amount
	}
	if req.Description != nil {
		billing.Description = *req.Description
	}

	if err := u.billingRepo.Update(tx, billing); err != nil {
		u.log.Warnf("Failed to update billing record: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BillingToResponse(billing), nil
}

func (u *billingUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	billing, err := u.billingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record by ID: %+v", err)
		return err
	}
	if billing == nil {
		return ErrBillingNotFound
	}

	if err := u.billingRepo.Delete(tx, billing); err != nil {
		u.log.Warnf("Failed to delete billing record: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *billingUsecase) Pay(ctx context.Context, id int) (*dto.BillingResponse, error) {
	now := time.Now()
	return u.transition(ctx, id, entity.BillingPaid, &now)
}

func (u *billingUsecase) Cancel(ctx context.Context, id int) (*dto.BillingResponse, error) {
	return u.transition(ctx, id, entity.BillingCancelled, nil)
}

func (u *billingUsecase) MarkOverdue(ctx context.Context, id int) (*dto.BillingResponse, error) {
	return u.transition(ctx, id, entity.BillingOverdue, nil)
}

func (u *billingUsecase) transition(ctx context.Context, id int, next entity.BillingStatus, paymentDate *time.Time) (*dto.BillingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	billing, err := u.billingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record by ID: %+v", err)
		return nil, err
	}
	if billing == nil {
		return nil, ErrBillingNotFound
	}

	if !billing.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	billing.Status = next
	if paymentDate != nil {
		billing.PaymentDate = paymentDate
	}

	if err := u.billingRepo.Update(tx, billing); err != nil {
		u.log.Warnf("Failed to update billing status: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BillingToResponse(billing), nil
}
