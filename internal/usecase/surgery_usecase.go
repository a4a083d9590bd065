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
	ErrSurgeryNotFound  = errors.New("surgery not found")
	ErrSurgeonNotFound  = errors.New("surgeon not found")
	ErrEndBeforeStart   = errors.New("end time must be after start time")
	ErrInvalidRecentDay = errors.New("days must be positive")
)

type SurgeryUsecase interface {
	Create(ctx context.Context, req *dto.CreateSurgeryRequest, createdBy int) (*dto.SurgeryResponse, error)
	GetByID(ctx context.Context, id int) (*dto.SurgeryResponse, error)
	List(ctx context.Context, filter entity.SurgeryFilter) (*dto.SurgeryListResponse, error)
	ListUpcoming(ctx context.Context, limit int) ([]dto.SurgeryResponse, error)
	ListRecent(ctx context.Context, days, limit int) ([]dto.SurgeryResponse, error)
	ListByPatient(ctx context.Context, patientID, skip, limit int) ([]dto.SurgeryResponse, error)
	ListBySurgeon(ctx context.Context, surgeonID, skip, limit int) ([]dto.SurgeryResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateSurgeryRequest) (*dto.SurgeryResponse, error)
	Delete(ctx context.Context, id int) error
}

type surgeryUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	surgeryRepo repository.SurgeryRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
}

func NewSurgeryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	surgeryRepo repository.SurgeryRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
) SurgeryUsecase {
	return &surgeryUsecase{
		db:          db,
		log:         log,
		surgeryRepo: surgeryRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
	}
}

func (u *surgeryUsecase) Create(ctx context.Context, req *dto.CreateSurgeryRequest, createdBy int) (*dto.SurgeryResponse, error) {
	operationDate, err := time.Parse("2006-01-02", req.OperationDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if req.EndTime != nil && !req.EndTime.After(req.StartTime) {
		return nil, ErrEndBeforeStart
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

	surgeon, err := u.userRepo.FindByID(tx, req.SurgeonID)
	if err != nil {
		u.log.Warnf("Failed to find surgeon by ID: %+v", err)
		return nil, err
	}
	if surgeon == nil || surgeon.Role != entity.RoleDoctor {
		return nil, ErrSurgeonNotFound
	}

	surgery := &entity.Surgery{
		PatientID: req.PatientID,
		SurgeonID: req.SurgeonID,

		OperationName: req.OperationName,
		OperationDate: operationDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,

		PreOpDays:  req.PreOpDays,
		PostOpDays: req.PostOpDays,

		Notes:         req.Notes,
		Complications: req.Complications,
		Outcome:       req.Outcome,

		AdditionalData: req.AdditionalData,

		CreatedBy: createdBy,
	}

	if err := u.surgeryRepo.Create(tx, surgery); err != nil {
		u.log.Warnf("Failed to create surgery: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	surgery.Patient = *patient
	surgery.Surgeon = *surgeon
	return converter.SurgeryToResponse(surgery), nil
}

func (u *surgeryUsecase) GetByID(ctx context.Context, id int) (*dto.SurgeryResponse, error) {
	surgery, err := u.surgeryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find surgery by ID: %+v", err)
		return nil, err
	}
	if surgery == nil {
		return nil, ErrSurgeryNotFound
	}

	return converter.SurgeryToResponse(surgery), nil
}

func (u *surgeryUsecase) List(ctx context.Context, filter entity.SurgeryFilter) (*dto.SurgeryListResponse, error) {
	surgeries, err := u.surgeryRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list surgeries: %+v", err)
		return nil, err
	}

	return &dto.SurgeryListResponse{
		Surgeries: converter.SurgeriesToResponses(surgeries),
		Total:     len(surgeries),
	}, nil
}

func (u *surgeryUsecase) ListUpcoming(ctx context.Context, limit int) ([]dto.SurgeryResponse, error) {
	surgeries, err := u.surgeryRepo.FindUpcoming(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to list upcoming surgeries: %+v", err)
		return nil, err
	}

	return converter.SurgeriesToResponses(surgeries), nil
}

func (u *surgeryUsecase) ListRecent(ctx context.Context, days, limit int) ([]dto.SurgeryResponse, error) {
	if days <= 0 {
		return nil, ErrInvalidRecentDay
	}

	since := time.Now().AddDate(0, 0, -days)
	surgeries, err := u.surgeryRepo.FindRecent(u.db.WithContext(ctx), since, limit)
	if err != nil {
		u.log.Warnf("Failed to list recent surgeries: %+v", err)
		return nil, err
	}

	return converter.SurgeriesToResponses(surgeries), nil
}

func (u *surgeryUsecase) ListByPatient(ctx context.Context, patientID, skip, limit int) ([]dto.SurgeryResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	surgeries, err := u.surgeryRepo.FindByPatient(db, patientID, skip, limit)
	if err != nil {
		u.log.Warnf("Failed to list surgeries by patient: %+v", err)
		return nil, err
	}

	return converter.SurgeriesToResponses(surgeries), nil
}

func (u *surgeryUsecase) ListBySurgeon(ctx context.Context, surgeonID, skip, limit int) ([]dto.SurgeryResponse, error) {
	surgeries, err := u.surgeryRepo.FindBySurgeon(u.db.WithContext(ctx), surgeonID, skip, limit)
	if err != nil {
		u.log.Warnf("Failed to list surgeries by surgeon: %+v", err)
		return nil, err
	}

	return converter.SurgeriesToResponses(surgeries), nil
}

func (u *surgeryUsecase) Update(ctx context.Context, id int, req *dto.UpdateSurgeryRequest) (*dto.SurgeryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	surgery, err := u.surgeryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find surgery by ID: %+v", err)
		return nil, err
	}
	if surgery == nil {
		return nil, ErrSurgeryNotFound
	}

	if req.OperationName != nil {
		surgery.OperationName = *req.OperationName
	}
	if req.OperationDate != nil {
		operationDate, err := time.Parse("2006-01-02", *req.OperationDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		surgery.OperationDate = operationDate
	}
	if req.StartTime != nil {
		surgery.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		surgery.EndTime = req.EndTime
	}
	if surgery.EndTime != nil && !surgery.EndTime.After(surgery.StartTime) {
		return nil, ErrEndBeforeStart
	}

	if req.PreOpDays != nil {
		surgery.PreOpDays = *req.PreOpDays
	}
	if req.PostOpDays != nil {
		surgery.PostOpDays = *req.PostOpDays
	}
	if req.Notes != nil {
		surgery.Notes = *req.Notes
	}
	if req.Complications != nil {
		surgery.Complications = *req.Complications
	}
	if req.Outcome != nil {
		surgery.Outcome = *req.Outcome
	}
	if req.AdditionalData != nil {
		surgery.AdditionalData = req.AdditionalData
	}

	if err := u.surgeryRepo.Update(tx, surgery); err != nil {
		u.log.Warnf("Failed to update surgery: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SurgeryToResponse(surgery), nil
}

func (u *surgeryUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	surgery, err := u.surgeryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find surgery by ID: %+v", err)
		return err
	}
	if surgery == nil {
		return ErrSurgeryNotFound
	}

	if err := u.surgeryRepo.Delete(tx, surgery); err != nil {
		u.log.Warnf("Failed to delete surgery: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
