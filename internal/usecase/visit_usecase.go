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
	ErrVisitNotFound        = errors.New("visit not found")
	ErrVisitAlreadyComplete = errors.New("visit is already completed")
	ErrVisitFinalized       = errors.New("visit is in a terminal status")
)

type VisitUsecase interface {
	Create(ctx context.Context, req *dto.CreateVisitRequest, createdBy int) (*dto.VisitResponse, error)
	GetByID(ctx context.Context, id int) (*dto.VisitResponse, error)
	List(ctx context.Context, filter entity.VisitFilter) (*dto.VisitListResponse, error)
	ListUpcoming(ctx context.Context, doctorID, limit int) ([]dto.VisitResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error)
	Delete(ctx context.Context, id int) error
	Complete(ctx context.Context, id int) (*dto.VisitResponse, error)

	AddDiagnosis(ctx context.Context, visitID int, req *dto.DiagnosisRequest) (*dto.DiagnosisResponse, error)
	AddTreatment(ctx context.Context, visitID int, req *dto.TreatmentRequest) (*dto.TreatmentResponse, error)
	SetVitalSigns(ctx context.Context, visitID int, req *dto.VitalSignsRequest) (*dto.VitalSignsResponse, error)
}

type visitUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	visitRepo   repository.VisitRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
) *visitUsecase {
	return &visitUsecase{
		db:          db,
		log:         log,
		visitRepo:   visitRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
	}
}

// CreateFromAppointment derives a visit from a completed appointment
// inside the caller's transaction. The appointment's symptoms become
// the chief complaint.
func (u *visitUsecase) CreateFromAppointment(tx *gorm.DB, appointment *entity.Appointment, completedBy int) (*entity.Visit, error) {
	visit := &entity.Visit{
		PatientID:      appointment.PatientID,
		DoctorID:       appointment.DoctorID,
		AppointmentID:  &appointment.ID,
		Status:         entity.VisitInProgress,
		VisitDate:      time.Now(),
		ChiefComplaint: appointment.Symptoms,
		CreatedBy:      completedBy,
	}

	if err := u.visitRepo.Create(tx, visit); err != nil {
		u.log.Warnf("Failed to create derived visit: %+v", err)
		return nil, err
	}

	return visit, nil
}

func (u *visitUsecase) Create(ctx context.Context, req *dto.CreateVisitRequest, createdBy int) (*dto.VisitResponse, error) {
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

	visitDate := time.Now()
	if req.VisitDate != nil {
		visitDate = *req.VisitDate
	}

	visit := &entity.Visit{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		AppointmentID: req.AppointmentID,
		Status:        entity.VisitScheduled,
		VisitDate:     visitDate,

		ChiefComplaint:          req.ChiefComplaint,
		HistoryOfPresentIllness: req.HistoryOfPresentIllness,
		PhysicalExamination:     req.PhysicalExamination,
		Assessment:              req.Assessment,
		Plan:                    req.Plan,

		CreatedBy: createdBy,
	}

	if err := u.visitRepo.Create(tx, visit); err != nil {
		u.log.Warnf("Failed to create visit: %+v", err)
		return nil, err
	}

	// Inline children share the transaction: the visit lands with all
	// of them or not at all
	for _, d := range req.Diagnoses {
		isPrimary := true
		if d.IsPrimary != nil {
			isPrimary = *d.IsPrimary
		}
		diagnosis := &entity.Diagnosis{
			VisitID:       visit.ID,
			ICDCode:       d.ICDCode,
			DiagnosisName: d.DiagnosisName,
			IsPrimary:     isPrimary,
		}
		if err := u.visitRepo.AddDiagnosis(tx, diagnosis); err != nil {
			u.log.Warnf("Failed to add diagnosis: %+v", err)
			return nil, err
		}
		visit.Diagnoses = append(visit.Diagnoses, *diagnosis)
	}

	for _, t := range req.Treatments {
		treatment := &entity.Treatment{
			VisitID:       visit.ID,
			TreatmentName: t.TreatmentName,
			Dosage:        t.Dosage,
			Frequency:     t.Frequency,
			DurationDays:  t.DurationDays,
		}
		if err := u.visitRepo.AddTreatment(tx, treatment); err != nil {
			u.log.Warnf("Failed to add treatment: %+v", err)
			return nil, err
		}
		visit.Treatments = append(visit.Treatments, *treatment)
	}

	if req.VitalSigns != nil {
		vitals := vitalSignsFromRequest(visit.ID, req.VitalSigns)
		if err := u.visitRepo.AddVitalSigns(tx, vitals); err != nil {
			u.log.Warnf("Failed to add vital signs: %+v", err)
			return nil, err
		}
		visit.VitalSigns = vitals
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) GetByID(ctx context.Context, id int) (*dto.VisitResponse, error) {
	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find visit by ID: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) List(ctx context.Context, filter entity.VisitFilter) (*dto.VisitListResponse, error) {
	visits, err := u.visitRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list visits: %+v", err)
		return nil, err
	}

	return &dto.VisitListResponse{
		Visits: converter.VisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

func (u *visitUsecase) ListUpcoming(ctx context.Context, doctorID, limit int) ([]dto.VisitResponse, error) {
	visits, err := u.visitRepo.FindUpcoming(u.db.WithContext(ctx), doctorID, limit)
	if err != nil {
		u.log.Warnf("Failed to list upcoming visits: %+v", err)
		return nil, err
	}

	return converter.VisitsToResponses(visits), nil
}

func (u *visitUsecase) Update(ctx context.Context, id int, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find visit by ID: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}
	if visit.Status.IsTerminal() {
		return nil, ErrVisitFinalized
	}

	if req.VisitDate != nil {
		visit.VisitDate = *req.VisitDate
	}
	if req.ChiefComplaint != nil {
		visit.ChiefComplaint = *req.ChiefComplaint
	}
	if req.HistoryOfPresentIllness != nil {
		visit.HistoryOfPresentIllness = *req.HistoryOfPresentIllness
	}
	if req.PhysicalExamination != nil {
		visit.PhysicalExamination = *req.PhysicalExamination
	}
	if req.Assessment != nil {
		visit.Assessment = *req.Assessment
	}
	if req.Plan != nil {
		visit.Plan = *req.Plan
	}

	if err := u.visitRepo.Update(tx, visit); err != nil {
		u.log.Warnf("Failed to update visit: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find visit by ID: %+v", err)
		return err
	}
	if visit == nil {
		return ErrVisitNotFound
	}

	if err := u.visitRepo.Delete(tx, visit); err != nil {
		u.log.Warnf("Failed to delete visit: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *visitUsecase) Complete(ctx context.Context, id int) (*dto.VisitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find visit by ID: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}
	if visit.Status == entity.VisitCompleted {
		return nil, ErrVisitAlreadyComplete
	}
	if !visit.Status.CanTransitionTo(entity.VisitCompleted) {
		return nil, ErrInvalidTransition
	}

	visit.Status = entity.VisitCompleted
	if err := u.visitRepo.Update(tx, visit); err != nil {
		u.log.Warnf("Failed to complete visit: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) AddDiagnosis(ctx context.Context, visitID int, req *dto.DiagnosisRequest) (*dto.DiagnosisResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit by ID: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	isPrimary := true
	if req.IsPrimary != nil {
		isPrimary = *req.IsPrimary
	}

	diagnosis := &entity.Diagnosis{
		VisitID:       visitID,
		ICDCode:       req.ICDCode,
		DiagnosisName: req.DiagnosisName,
		IsPrimary:     isPrimary,
	}

	if err := u.visitRepo.AddDiagnosis(tx, diagnosis); err != nil {
		u.log.Warnf("Failed to add diagnosis: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *visitUsecase) AddTreatment(ctx context.Context, visitID int, req *dto.TreatmentRequest) (*dto.TreatmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit by ID: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	treatment := &entity.Treatment{
		VisitID:       visitID,
		TreatmentName: req.TreatmentName,
		Dosage:        req.Dosage,
		Frequency:     req.Frequency,
		DurationDays:  req.DurationDays,
	}

	if err := u.visitRepo.AddTreatment(tx, treatment); err != nil {
		u.log.Warnf("Failed to add treatment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TreatmentToResponse(treatment), nil
}

// SetVitalSigns replaces the visit's vital signs record if one exists
func (u *visitUsecase) SetVitalSigns(ctx context.Context, visitID int, req *dto.VitalSignsRequest) (*dto.VitalSignsResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit by ID: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	existing, err := u.visitRepo.FindVitalSigns(tx, visitID)
	if err != nil {
		u.log.Warnf("Failed to find vital signs: %+v", err)
		return nil, err
	}
	if existing != nil {
		if err := u.visitRepo.DeleteVitalSigns(tx, existing); err != nil {
			u.log.Warnf("Failed to delete prior vital signs: %+v", err)
			return nil, err
		}
	}

	vitals := vitalSignsFromRequest(visitID, req)
	if err := u.visitRepo.AddVitalSigns(tx, vitals); err != nil {
		u.log.Warnf("Failed to add vital signs: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VitalSignsToResponse(vitals), nil
}

func vitalSignsFromRequest(visitID int, req *dto.VitalSignsRequest) *entity.VitalSigns {
	vitals := &entity.VitalSigns{
		VisitID:                visitID,
		BloodPressureSystolic:  req.BloodPressureSystolic,
		BloodPressureDiastolic: req.BloodPressureDiastolic,
		HeartRate:              req.HeartRate,
		Temperature:            req.Temperature,
		Weight:                 req.Weight,
		Height:                 req.Height,
		BMI:                    req.BMI,
	}

	// Derive BMI when height and weight are present but the caller
	// did not supply one
	if vitals.BMI == nil && req.Weight != nil && req.Height != nil && *req.Height > 0 {
		heightMeters := *req.Height / 100
		bmi := *req.Weight / (heightMeters * heightMeters)
		vitals.BMI = &bmi
	}

	return vitals
}
