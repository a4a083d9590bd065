package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// The repositories are faked, so the mocked connection only sees the
// transaction boundary: Begin plus either Commit or Rollback.
func newUsecaseTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeAppointmentRepo struct {
	appointments map[int]*entity.Appointment
	candidates   []entity.Appointment
	calls        []string
	created      []*entity.Appointment
}

func (f *fakeAppointmentRepo) Create(_ *gorm.DB, appointment *entity.Appointment) error {
	f.calls = append(f.calls, "create")
	appointment.ID = 100 + len(f.created)
	f.created = append(f.created, appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ *gorm.DB, id int) (*entity.Appointment, error) {
	return f.appointments[id], nil
}

func (f *fakeAppointmentRepo) FindAll(_ *gorm.DB, _ entity.AppointmentFilter) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindUpcoming(_ *gorm.DB, _ int, _ int) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) LockDoctorSchedule(_ *gorm.DB, _ int) error {
	f.calls = append(f.calls, "lock")
	return nil
}

func (f *fakeAppointmentRepo) FindSlotCandidates(_ *gorm.DB, _ int, _ time.Time, _ int) ([]entity.Appointment, error) {
	f.calls = append(f.calls, "candidates")
	return f.candidates, nil
}

func (f *fakeAppointmentRepo) Update(_ *gorm.DB, _ *entity.Appointment) error {
	f.calls = append(f.calls, "update")
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ *gorm.DB, _ *entity.Appointment) error { return nil }
func (f *fakeAppointmentRepo) CountAll(_ *gorm.DB) (int64, error)             { return 0, nil }
func (f *fakeAppointmentRepo) CountUpcoming(_ *gorm.DB, _ time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeAppointmentRepo) CountCreatedBetween(_ *gorm.DB, _, _ time.Time) (int64, error) {
	return 0, nil
}

type fakePatientRepo struct {
	patients map[int]*entity.Patient
}

func (f *fakePatientRepo) Create(_ *gorm.DB, _ *entity.Patient) error { return nil }
func (f *fakePatientRepo) FindByID(_ *gorm.DB, id int) (*entity.Patient, error) {
	return f.patients[id], nil
}
func (f *fakePatientRepo) FindAll(_ *gorm.DB, _, _ int, _ string) ([]entity.Patient, error) {
	return nil, nil
}
func (f *fakePatientRepo) FindActive(_ *gorm.DB, _, _ int) ([]entity.Patient, error) {
	return nil, nil
}
func (f *fakePatientRepo) SearchByName(_ *gorm.DB, _ string, _ int) ([]entity.Patient, error) {
	return nil, nil
}
func (f *fakePatientRepo) Update(_ *gorm.DB, _ *entity.Patient) error     { return nil }
func (f *fakePatientRepo) SoftDelete(_ *gorm.DB, _ *entity.Patient) error { return nil }
func (f *fakePatientRepo) CountAll(_ *gorm.DB) (int64, error)             { return 0, nil }
func (f *fakePatientRepo) CountActive(_ *gorm.DB) (int64, error)          { return 0, nil }
func (f *fakePatientRepo) CountCreatedBetween(_ *gorm.DB, _, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	users map[int]*entity.User
}

func (f *fakeUserRepo) Create(_ *gorm.DB, _ *entity.User) error { return nil }
func (f *fakeUserRepo) FindByID(_ *gorm.DB, id int) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) FindByUsername(_ *gorm.DB, _ string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByEmail(_ *gorm.DB, _ string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindAll(_ *gorm.DB, _, _ int) ([]entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(_ *gorm.DB, _ *entity.User) error             { return nil }
func (f *fakeUserRepo) Delete(_ *gorm.DB, _ *entity.User) error             { return nil }
func (f *fakeUserRepo) CountAll(_ *gorm.DB) (int64, error)                  { return 0, nil }
func (f *fakeUserRepo) CountActive(_ *gorm.DB) (int64, error)               { return 0, nil }

type fakeVisitRepo struct {
	created   []*entity.Visit
	createErr error
}

func (f *fakeVisitRepo) Create(_ *gorm.DB, visit *entity.Visit) error {
	if f.createErr != nil {
		return f.createErr
	}
	visit.ID = 500 + len(f.created)
	f.created = append(f.created, visit)
	return nil
}

func (f *fakeVisitRepo) FindByID(_ *gorm.DB, _ int) (*entity.Visit, error) { return nil, nil }
func (f *fakeVisitRepo) FindByAppointmentID(_ *gorm.DB, _ int) (*entity.Visit, error) {
	return nil, nil
}
func (f *fakeVisitRepo) FindAll(_ *gorm.DB, _ entity.VisitFilter) ([]entity.Visit, error) {
	return nil, nil
}
func (f *fakeVisitRepo) FindUpcoming(_ *gorm.DB, _ int, _ int) ([]entity.Visit, error) {
	return nil, nil
}
func (f *fakeVisitRepo) Update(_ *gorm.DB, _ *entity.Visit) error            { return nil }
func (f *fakeVisitRepo) Delete(_ *gorm.DB, _ *entity.Visit) error            { return nil }
func (f *fakeVisitRepo) AddDiagnosis(_ *gorm.DB, _ *entity.Diagnosis) error  { return nil }
func (f *fakeVisitRepo) AddTreatment(_ *gorm.DB, _ *entity.Treatment) error  { return nil }
func (f *fakeVisitRepo) FindVitalSigns(_ *gorm.DB, _ int) (*entity.VitalSigns, error) {
	return nil, nil
}
func (f *fakeVisitRepo) AddVitalSigns(_ *gorm.DB, _ *entity.VitalSigns) error    { return nil }
func (f *fakeVisitRepo) DeleteVitalSigns(_ *gorm.DB, _ *entity.VitalSigns) error { return nil }
func (f *fakeVisitRepo) CountAll(_ *gorm.DB) (int64, error)                      { return 0, nil }
func (f *fakeVisitRepo) CountVisitDateSince(_ *gorm.DB, _ time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeVisitRepo) CountVisitDateBetween(_ *gorm.DB, _, _ time.Time) (int64, error) {
	return 0, nil
}

type appointmentTestEnv struct {
	usecase         AppointmentUsecase
	mock            sqlmock.Sqlmock
	appointmentRepo *fakeAppointmentRepo
	visitRepo       *fakeVisitRepo
}

func newAppointmentTestEnv(t *testing.T) *appointmentTestEnv {
	t.Helper()

	db, mock := newUsecaseTestDB(t)
	log := newTestLogger()

	appointmentRepo := &fakeAppointmentRepo{appointments: map[int]*entity.Appointment{}}
	patientRepo := &fakePatientRepo{patients: map[int]*entity.Patient{1: {ID: 1}}}
	userRepo := &fakeUserRepo{users: map[int]*entity.User{2: {ID: 2, Role: entity.RoleDoctor}}}
	visitRepo := &fakeVisitRepo{}
	visitUsecase := NewVisitUsecase(db, log, visitRepo, patientRepo, userRepo)

	return &appointmentTestEnv{
		usecase:         NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, userRepo, visitRepo, visitUsecase),
		mock:            mock,
		appointmentRepo: appointmentRepo,
		visitRepo:       visitRepo,
	}
}

func (e *appointmentTestEnv) callIndex(name string) int {
	for i, call := range e.appointmentRepo.calls {
		if call == name {
			return i
		}
	}
	return -1
}

func TestAppointmentCreateLocksDoctorSchedule(t *testing.T) {
	env := newAppointmentTestEnv(t)
	env.mock.ExpectBegin()
	env.mock.ExpectCommit()

	req := &dto.CreateAppointmentRequest{
		PatientID:       1,
		DoctorID:        2,
		AppointmentType: "consultation",
		ScheduledDate:   time.Now().Add(24 * time.Hour),
		DurationMinutes: 30,
	}

	resp, err := env.usecase.Create(context.Background(), req, 5)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if resp == nil || resp.Status != string(entity.AppointmentScheduled) {
		t.Fatalf("expected scheduled appointment, got %+v", resp)
	}

	lock, candidates, create := env.callIndex("lock"), env.callIndex("candidates"), env.callIndex("create")
	if lock == -1 || candidates == -1 || create == -1 {
		t.Fatalf("missing repository calls, got %v", env.appointmentRepo.calls)
	}
	if lock > candidates || candidates > create {
		t.Errorf("schedule lock must precede conflict check and insert, got order %v", env.appointmentRepo.calls)
	}
	if err := env.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction expectations: %v", err)
	}
}

func TestAppointmentCreateSlotConflict(t *testing.T) {
	env := newAppointmentTestEnv(t)
	env.mock.ExpectBegin()
	env.mock.ExpectRollback()

	start := time.Now().Add(24 * time.Hour)
	env.appointmentRepo.candidates = []entity.Appointment{
		{ID: 9, DoctorID: 2, Status: entity.AppointmentConfirmed, ScheduledDate: start, DurationMinutes: 30},
	}

	req := &dto.CreateAppointmentRequest{
		PatientID:       1,
		DoctorID:        2,
		AppointmentType: "consultation",
		ScheduledDate:   start,
		DurationMinutes: 30,
	}

	if _, err := env.usecase.Create(context.Background(), req, 5); !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("expected ErrSlotConflict, got %v", err)
	}
	if len(env.appointmentRepo.created) != 0 {
		t.Errorf("conflicting appointment must not be inserted")
	}
	if env.callIndex("lock") == -1 || env.callIndex("lock") > env.callIndex("candidates") {
		t.Errorf("schedule lock must precede conflict check, got order %v", env.appointmentRepo.calls)
	}
	if err := env.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction expectations: %v", err)
	}
}

func TestAppointmentCompleteDerivesVisit(t *testing.T) {
	env := newAppointmentTestEnv(t)
	env.mock.ExpectBegin()
	env.mock.ExpectCommit()

	env.appointmentRepo.appointments[42] = &entity.Appointment{
		ID:              42,
		PatientID:       1,
		DoctorID:        2,
		Status:          entity.AppointmentInProgress,
		ScheduledDate:   time.Now().Add(-time.Hour),
		DurationMinutes: 30,
		Symptoms:        "persistent cough",
	}

	resp, err := env.usecase.Complete(context.Background(), 42, 7)
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	if len(env.visitRepo.created) != 1 {
		t.Fatalf("expected exactly one derived visit, got %d", len(env.visitRepo.created))
	}
	visit := env.visitRepo.created[0]
	if visit.AppointmentID == nil || *visit.AppointmentID != 42 {
		t.Errorf("derived visit appointment ID = %v, want 42", visit.AppointmentID)
	}
	if visit.ChiefComplaint != "persistent cough" {
		t.Errorf("derived visit chief complaint = %q, want appointment symptoms", visit.ChiefComplaint)
	}
	if visit.PatientID != 1 || visit.DoctorID != 2 {
		t.Errorf("derived visit patient/doctor = %d/%d, want 1/2", visit.PatientID, visit.DoctorID)
	}
	if visit.CreatedBy != 7 {
		t.Errorf("derived visit created by = %d, want 7", visit.CreatedBy)
	}
	if visit.Status != entity.VisitInProgress {
		t.Errorf("derived visit status = %q, want %q", visit.Status, entity.VisitInProgress)
	}
	if resp.VisitID == nil || *resp.VisitID != visit.ID {
		t.Errorf("response visit ID = %v, want %d", resp.VisitID, visit.ID)
	}
	if resp.Status != string(entity.AppointmentCompleted) {
		t.Errorf("appointment status = %q, want completed", resp.Status)
	}
	if err := env.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction expectations: %v", err)
	}
}

func TestAppointmentCompleteRollsBackWhenVisitFails(t *testing.T) {
	env := newAppointmentTestEnv(t)
	env.mock.ExpectBegin()
	env.mock.ExpectRollback()

	env.appointmentRepo.appointments[42] = &entity.Appointment{
		ID:              42,
		PatientID:       1,
		DoctorID:        2,
		Status:          entity.AppointmentConfirmed,
		ScheduledDate:   time.Now().Add(-time.Hour),
		DurationMinutes: 30,
	}
	env.visitRepo.createErr = errors.New("insert failed")

	resp, err := env.usecase.Complete(context.Background(), 42, 7)
	if err == nil {
		t.Fatal("expected error when visit derivation fails")
	}
	if resp != nil {
		t.Errorf("expected no response, got %+v", resp)
	}
	if len(env.visitRepo.created) != 0 {
		t.Errorf("no visit should survive a failed derivation")
	}
	if err := env.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("status change and derivation must roll back together: %v", err)
	}
}

func TestAppointmentConfirmRejectsNonConfirmableStatus(t *testing.T) {
	statuses := []entity.AppointmentStatus{
		entity.AppointmentInProgress,
		entity.AppointmentCompleted,
		entity.AppointmentCancelled,
		entity.AppointmentNoShow,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			env := newAppointmentTestEnv(t)
			env.mock.ExpectBegin()
			env.mock.ExpectRollback()

			env.appointmentRepo.appointments[42] = &entity.Appointment{
				ID:              42,
				PatientID:       1,
				DoctorID:        2,
				Status:          status,
				ScheduledDate:   time.Now().Add(time.Hour),
				DurationMinutes: 30,
			}

			if _, err := env.usecase.Confirm(context.Background(), 42); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("Confirm from %q: expected ErrInvalidTransition, got %v", status, err)
			}
			if err := env.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("transaction expectations: %v", err)
			}
		})
	}
}
