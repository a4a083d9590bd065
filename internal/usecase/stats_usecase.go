package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medicore/config"
	"medicore/internal/converter"
	"medicore/internal/delivery/dto"
	"medicore/internal/domain/entity"
	"medicore/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDashboardStatNotFound = errors.New("dashboard stat not found")
	ErrInvalidPeriod         = errors.New("invalid year or month")
)

const summaryCacheKey = "stats:summary"

type StatsUsecase interface {
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
	Monthly(ctx context.Context, year, month int) (*dto.MonthlyStatsResponse, error)
	ChartSeries(ctx context.Context) ([]dto.ChartSeriesResponse, error)
	Refresh(ctx context.Context) (*dto.RefreshStatsResponse, error)

	ListDashboardStats(ctx context.Context, activeOnly bool) ([]dto.DashboardStatResponse, error)
	CreateDashboardStat(ctx context.Context, req *dto.CreateDashboardStatRequest) (*dto.DashboardStatResponse, error)
	UpdateDashboardStat(ctx context.Context, id int, req *dto.UpdateDashboardStatRequest) (*dto.DashboardStatResponse, error)
	DeleteDashboardStat(ctx context.Context, id int) error
}

type statsUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	cfg              config.StatsConfig
	redisClient      *redis.Client
	statRepo         repository.StatRepository
	userRepo         repository.UserRepository
	patientRepo      repository.PatientRepository
	appointmentRepo  repository.AppointmentRepository
	visitRepo        repository.VisitRepository
	prescriptionRepo repository.PrescriptionRepository
	surgeryRepo      repository.SurgeryRepository
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.StatsConfig,
	redisClient *redis.Client,
	statRepo repository.StatRepository,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	visitRepo repository.VisitRepository,
	prescriptionRepo repository.PrescriptionRepository,
	surgeryRepo repository.SurgeryRepository,
) StatsUsecase {
	return &statsUsecase{
		db:               db,
		log:              log,
		cfg:              cfg,
		redisClient:      redisClient,
		statRepo:         statRepo,
		userRepo:         userRepo,
		patientRepo:      patientRepo,
		appointmentRepo:  appointmentRepo,
		visitRepo:        visitRepo,
		prescriptionRepo: prescriptionRepo,
		surgeryRepo:      surgeryRepo,
	}
}

// Summary serves from the Redis cache when fresh, otherwise recounts
// from the primary tables and repopulates the cache.
func (u *statsUsecase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	cached, err := u.redisClient.Get(ctx, summaryCacheKey).Result()
	if err == nil {
		var summary dto.SummaryResponse
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
		u.log.Warnf("Failed to decode cached summary, recomputing: %+v", err)
	} else if !errors.Is(err, redis.Nil) {
		u.log.Warnf("Failed to read summary cache: %+v", err)
	}

	summary, err := u.computeSummary(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(summary)
	if err == nil {
		if err := u.redisClient.Set(ctx, summaryCacheKey, payload, u.cfg.SummaryCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache summary: %+v", err)
		}
	}

	return summary, nil
}

func (u *statsUsecase) computeSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	db := u.db.WithContext(ctx)
	now := time.Now()
	recentSince := now.AddDate(0, 0, -u.cfg.RecentDays)

	summary := &dto.SummaryResponse{GeneratedAt: now}

	var err error
	if summary.Users.Total, err = u.userRepo.CountAll(db); err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return nil, err
	}
	if summary.Users.Active, err = u.userRepo.CountActive(db); err != nil {
		u.log.Warnf("Failed to count active users: %+v", err)
		return nil, err
	}
	if summary.Patients.Total, err = u.patientRepo.CountAll(db); err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	if summary.Patients.Active, err = u.patientRepo.CountActive(db); err != nil {
		u.log.Warnf("Failed to count active patients: %+v", err)
		return nil, err
	}
	if summary.Appointments.Total, err = u.appointmentRepo.CountAll(db); err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}
	if summary.Appointments.Upcoming, err = u.appointmentRepo.CountUpcoming(db, now); err != nil {
		u.log.Warnf("Failed to count upcoming appointments: %+v", err)
		return nil, err
	}
	if summary.Visits.Total, err = u.visitRepo.CountAll(db); err != nil {
		u.log.Warnf("Failed to count visits: %+v", err)
		return nil, err
	}
	if summary.Visits.Recent, err = u.visitRepo.CountVisitDateSince(db, recentSince); err != nil {
		u.log.Warnf("Failed to count recent visits: %+v", err)
		return nil, err
	}
	if summary.Prescriptions.Total, err = u.prescriptionRepo.CountAll(db); err != nil {
		u.log.Warnf("Failed to count prescriptions: %+v", err)
		return nil, err
	}
	if summary.Prescriptions.Active, err = u.prescriptionRepo.CountActive(db); err != nil {
		u.log.Warnf("Failed to count active prescriptions: %+v", err)
		return nil, err
	}
	if summary.Surgeries.Total, err = u.surgeryRepo.CountAll(db); err != nil {
		u.log.Warnf("Failed to count surgeries: %+v", err)
		return nil, err
	}
	if summary.Surgeries.Recent, err = u.surgeryRepo.CountOperationDateSince(db, recentSince); err != nil {
		u.log.Warnf("Failed to count recent surgeries: %+v", err)
		return nil, err
	}

	return summary, nil
}

func (u *statsUsecase) Monthly(ctx context.Context, year, month int) (*dto.MonthlyStatsResponse, error) {
	if year < 2000 || year > 2200 || month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}

	db := u.db.WithContext(ctx)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	stats := &dto.MonthlyStatsResponse{Year: year, Month: month}

	var err error
	if stats.NewPatients, err = u.patientRepo.CountCreatedBetween(db, start, end); err != nil {
		u.log.Warnf("Failed to count new patients: %+v", err)
		return nil, err
	}
	if stats.Appointments, err = u.appointmentRepo.CountCreatedBetween(db, start, end); err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}
	if stats.Visits, err = u.visitRepo.CountVisitDateBetween(db, start, end); err != nil {
		u.log.Warnf("Failed to count visits: %+v", err)
		return nil, err
	}
	if stats.Surgeries, err = u.surgeryRepo.CountCreatedBetween(db, start, end); err != nil {
		u.log.Warnf("Failed to count surgeries: %+v", err)
		return nil, err
	}
	if stats.Prescriptions, err = u.prescriptionRepo.CountPrescriptionDateBetween(db, start, end); err != nil {
		u.log.Warnf("Failed to count prescriptions: %+v", err)
		return nil, err
	}

	return stats, nil
}

// ChartSeries returns 12 months of visit and new-patient counts
// ending with the current month
func (u *statsUsecase) ChartSeries(ctx context.Context) ([]dto.ChartSeriesResponse, error) {
	db := u.db.WithContext(ctx)
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	visitSeries := dto.ChartSeriesResponse{Name: "visits", Points: make([]dto.ChartPointResponse, 0, 12)}
	patientSeries := dto.ChartSeriesResponse{Name: "new_patients", Points: make([]dto.ChartPointResponse, 0, 12)}

	for i := 11; i >= 0; i-- {
		start := firstOfMonth.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		label := start.Format("2006-01")

		visits, err := u.visitRepo.CountVisitDateBetween(db, start, end)
		if err != nil {
			u.log.Warnf("Failed to count visits for chart: %+v", err)
			return nil, err
		}
		visitSeries.Points = append(visitSeries.Points, dto.ChartPointResponse{Label: label, Value: visits})

		patients, err := u.patientRepo.CountCreatedBetween(db, start, end)
		if err != nil {
			u.log.Warnf("Failed to count patients for chart: %+v", err)
			return nil, err
		}
		patientSeries.Points = append(patientSeries.Points, dto.ChartPointResponse{Label: label, Value: patients})
	}

	return []dto.ChartSeriesResponse{visitSeries, patientSeries}, nil
}

// Refresh persists the current summary into system_stats and drops
// the Redis cache so the next read sees fresh numbers
func (u *statsUsecase) Refresh(ctx context.Context) (*dto.RefreshStatsResponse, error) {
	summary, err := u.computeSummary(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entries := []struct {
		statType entity.StatType
		statKey  string
		value    int64
	}{
		{entity.StatTypeUsers, "total", summary.Users.Total},
		{entity.StatTypeUsers, "active", summary.Users.Active},
		{entity.StatTypePatients, "total", summary.Patients.Total},
		{entity.StatTypePatients, "active", summary.Patients.Active},
		{entity.StatTypeAppointments, "total", summary.Appointments.Total},
		{entity.StatTypeAppointments, "upcoming", summary.Appointments.Upcoming},
		{entity.StatTypeVisits, "total", summary.Visits.Total},
		{entity.StatTypeVisits, "recent", summary.Visits.Recent},
		{entity.StatTypePrescriptions, "total", summary.Prescriptions.Total},
		{entity.StatTypePrescriptions, "active", summary.Prescriptions.Active},
		{entity.StatTypeSurgeries, "total", summary.Surgeries.Total},
		{entity.StatTypeSurgeries, "recent", summary.Surgeries.Recent},
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	for _, e := range entries {
		value := e.value
		stat := &entity.SystemStat{
			StatType:    e.statType,
			StatKey:     e.statKey,
			IntValue:    &value,
			Description: fmt.Sprintf("%s %s as of %s", e.statType, e.statKey, now.Format(time.RFC3339)),
		}
		if err := u.statRepo.Upsert(tx, stat); err != nil {
			u.log.Warnf("Failed to upsert system stat: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Del(ctx, summaryCacheKey).Err(); err != nil {
		u.log.Warnf("Failed to drop summary cache: %+v", err)
	}

	return &dto.RefreshStatsResponse{
		Updated:     len(entries),
		RefreshedAt: now,
	}, nil
}

func (u *statsUsecase) ListDashboardStats(ctx context.Context, activeOnly bool) ([]dto.DashboardStatResponse, error) {
	stats, err := u.statRepo.FindDashboardStats(u.db.WithContext(ctx), activeOnly)
	if err != nil {
		u.log.Warnf("Failed to list dashboard stats: %+v", err)
		return nil, err
	}

	return converter.DashboardStatsToResponses(stats), nil
}

func (u *statsUsecase) CreateDashboardStat(ctx context.Context, req *dto.CreateDashboardStatRequest) (*dto.DashboardStatResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	stat := &entity.DashboardStat{
		Title:    req.Title,
		StatKey:  req.StatKey,
		Icon:     req.Icon,
		Position: req.Position,
		IsActive: isActive,
	}

	if err := u.statRepo.CreateDashboardStat(tx, stat); err != nil {
		u.log.Warnf("Failed to create dashboard stat: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DashboardStatToResponse(stat), nil
}

func (u *statsUsecase) UpdateDashboardStat(ctx context.Context, id int, req *dto.UpdateDashboardStatRequest) (*dto.DashboardStatResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	stat, err := u.statRepo.FindDashboardStatByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find dashboard stat by ID: %+v", err)
		return nil, err
	}
	if stat == nil {
		return nil, ErrDashboardStatNotFound
	}

	if req.Title != nil {
		stat.Title = *req.Title
	}
	if req.StatKey != nil {
		stat.StatKey = *req.StatKey
	}
	if req.Icon != nil {
		stat.Icon = *req.Icon
	}
	if req.Position != nil {
		stat.Position = *req.Position
	}
	if req.IsActive != nil {
		stat.IsActive = *req.IsActive
	}

	if err := u.statRepo.UpdateDashboardStat(tx, stat); err != nil {
		u.log.Warnf("Failed to update dashboard stat: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DashboardStatToResponse(stat), nil
}

func (u *statsUsecase) DeleteDashboardStat(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	stat, err := u.statRepo.FindDashboardStatByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find dashboard stat by ID: %+v", err)
		return err
	}
	if stat == nil {
		return ErrDashboardStatNotFound
	}

	if err := u.statRepo.DeleteDashboardStat(tx, stat); err != nil {
		u.log.Warnf("Failed to delete dashboard stat: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
