package usecase

import (
	"context"
	"errors"

	"medicore/internal/converter"
	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
	"medicore/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound  = errors.New("prescription not found")
	ErrMedicationNotFound    = errors.New("medication not found")
	ErrNoMedications         = errors.New("prescription requires at least one medication")
	ErrPrescriptionFinalized = errors.New("prescription is in a terminal status")
	ErrLastMedication        = errors.New("prescription must keep at least one medication")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest, createdBy int) (*dto.PrescriptionResponse, error)
	GetByID(ctx context.Context, id int) (*dto.PrescriptionResponse, error)
	List(ctx context.Context, filter entity.PrescriptionFilter) (*dto.PrescriptionListResponse, error)
	ListActive(ctx context.Context, patientID, limit int) ([]dto.PrescriptionResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, id int) error
	Complete(ctx context.Context, id int) (*dto.PrescriptionResponse, error)
	Cancel(ctx context.Context, id int) (*dto.PrescriptionResponse, error)

	ListMedications(ctx context.Context, prescriptionID int) ([]dto.MedicationResponse, error)
	AddMedication(ctx context.Context, prescriptionID int, req *dto.MedicationRequest) (*dto.MedicationResponse, error)
	UpdateMedication(ctx context.Context, medicationID int, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error)
	DeleteMedication(ctx context.Context, medicationID int) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	userRepo         repository.UserRepository
	visitRepo        repository.VisitRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	visitRepo repository.VisitRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		userRepo:         userRepo,
		visitRepo:        visitRepo,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest, createdBy int) (*dto.PrescriptionResponse, error) {
	if len(req.Medications) == 0 {
		return nil, ErrNoMedications
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

	if req.VisitID != nil {
		visit, err := u.visitRepo.FindByID(tx, *req.VisitID)
		if err != nil {
			u.log.Warnf("Failed to find visit by ID: %+v", err)
			return nil, err
		}
		if visit == nil {
			return nil, ErrVisitNotFound
		}
	}

	prescription := &entity.Prescription{
		PatientID:    req.PatientID,
		DoctorID:     req.DoctorID,
		VisitID:      req.VisitID,
		Status:       entity.PrescriptionActive,
		Notes:        req.Notes,
		FollowUpDate: req.FollowUpDate,
		CreatedBy:    createdBy,
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	for _, m := range req.Medications {
		medication := &entity.Medication{
			PrescriptionID: prescription.ID,
			MedicationName: m.MedicationName,
			GenericName:    m.GenericName,
			DosageForm:     m.DosageForm,
			Strength:       m.Strength,
			Dosage:         m.Dosage,
			Frequency:      m.Frequency,
			DurationDays:   m.DurationDays,
			Instructions:   m.Instructions,
			Quantity:       m.Quantity,
		}
		if err := u.prescriptionRepo.AddMedication(tx, medication); err != nil {
			u.log.Warnf("Failed to add medication: %+v", err)
			return nil, err
		}
		prescription.Medications = append(prescription.Medications, *medication)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetByID(ctx context.Context, id int) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription by ID: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) List(ctx context.Context, filter entity.PrescriptionFilter) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

func (u *prescriptionUsecase) ListActive(ctx context.Context, patientID, limit int) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindActive(u.db.WithContext(ctx), patientID, limit)
	if err != nil {
		u.log.Warnf("Failed to list active prescriptions: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, id int, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription by ID: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	if prescription.Status.IsTerminal() {
		return nil, ErrPrescriptionFinalized
	}

	if req.Notes != nil {
		prescription.Notes = *req.Notes
	}
	if req.FollowUpDate != nil {
		prescription.FollowUpDate = req.FollowUpDate
	}

	if err := u.prescriptionRepo.Update(tx, prescription); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription by ID: %+v", err)
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	if err := u.prescriptionRepo.Delete(tx, prescription); err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *prescriptionUsecase) Complete(ctx context.Context, id int) (*dto.PrescriptionResponse, error) {
	return u.transition(ctx, id, entity.PrescriptionCompleted)
}

func (u *prescriptionUsecase) Cancel(ctx context.Context, id int) (*dto.PrescriptionResponse, error) {
	return u.transition(ctx, id, entity.PrescriptionCancelled)
}

func (u *prescriptionUsecase) transition(ctx context.Context, id int, next entity.PrescriptionStatus) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription by ID: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if !prescription.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	prescription.Status = next

	if err := u.prescriptionRepo.Update(tx, prescription); err != nil {
		u.log.Warnf("Failed to update prescription status: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) ListMedications(ctx context.Context, prescriptionID int) ([]dto.MedicationResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription by ID: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.MedicationsToResponses(prescription.Medications), nil
}

func (u *prescriptionUsecase) AddMedication(ctx context.Context, prescriptionID int, req *dto.MedicationRequest) (*dto.MedicationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(tx, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription by ID: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	if prescription.Status.IsTerminal() {
		return nil, ErrPrescriptionFinalized
	}

	medication := &entity.Medication{
		PrescriptionID: prescriptionID,
		MedicationName: req.MedicationName,
		GenericName:    req.GenericName,
		DosageForm:     req.DosageForm,
		Strength:       req.Strength,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		DurationDays:   req.DurationDays,
		Instructions:   req.Instructions,
		Quantity:       req.Quantity,
	}

	if err := u.prescriptionRepo.AddMedication(tx, medication); err != nil {
		u.log.Warnf("Failed to add medication: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicationToResponse(medication), nil
}

func (u *prescriptionUsecase) UpdateMedication(ctx context.Context, medicationID int, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medication, err := u.prescriptionRepo.FindMedicationByID(tx, medicationID)
	if err != nil {
		u.log.Warnf("Failed to find medication by ID: %+v", err)
		return nil, err
	}
	if medication == nil {
		return nil, ErrMedicationNotFound
	}

	if req.MedicationName != nil {
		medication.MedicationName = *req.MedicationName
	}
	if req.GenericName != nil {
		medication.GenericName = *req.GenericName
	}
	if req.DosageForm != nil {
		medication.DosageForm = *req.DosageForm
	}
	if req.Strength != nil {
		medication.Strength = *req.Strength
	}
	if req.Dosage != nil {
		medication.Dosage = *req.Dosage
	}
	if req.Frequency != nil {
		medication.Frequency = *req.Frequency
	}
	if req.DurationDays != nil {
		medication.DurationDays = *req.DurationDays
	}
	if req.Instructions != nil {
		medication.Instructions = *req.Instructions
	}
	if req.Quantity != nil {
		medication.Quantity = *req.Quantity
	}

	if err := u.prescriptionRepo.UpdateMedication(tx, medication); err != nil {
		u.log.Warnf("Failed to update medication: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicationToResponse(medication), nil
}

func (u *prescriptionUsecase) DeleteMedication(ctx context.Context, medicationID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medication, err := u.prescriptionRepo.FindMedicationByID(tx, medicationID)
	if err != nil {
		u.log.Warnf("Failed to find medication by ID: %+v", err)
		return err
	}
	if medication == nil {
		return ErrMedicationNotFound
	}

	prescription, err := u.prescriptionRepo.FindByID(tx, medication.PrescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription by ID: %+v", err)
		return err
	}
	if prescription != nil && len(prescription.Medications) <= 1 {
		return ErrLastMedication
	}

	if err := u.prescriptionRepo.DeleteMedication(tx, medication); err != nil {
		u.log.Warnf("Failed to delete medication: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
