package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRepositoryTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func TestCountPrescriptionDateBetween(t *testing.T) {
	db, mock := newRepositoryTestDB(t)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "prescriptions" WHERE prescription_date >= $1 AND prescription_date < $2`,
	)).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	repo := NewPrescriptionRepository()
	count, err := repo.CountPrescriptionDateBetween(db, start, end)
	if err != nil {
		t.Fatalf("CountPrescriptionDateBetween returned error: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("query expectations: %v", err)
	}
}

func TestLockDoctorSchedule(t *testing.T) {
	db, mock := newRepositoryTestDB(t)

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1, $2)")).
		WithArgs(doctorScheduleLockClass, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &appointmentRepository{}
	if err := repo.LockDoctorSchedule(db, 42); err != nil {
		t.Fatalf("LockDoctorSchedule returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("lock expectations: %v", err)
	}
}
