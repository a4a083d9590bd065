package repository

import (
	"medicore/internal/domain/entity"

	"gorm.io/gorm"
)

type StatRepository interface {
	Upsert(db *gorm.DB, stat *entity.SystemStat) error
	FindByTypeAndKey(db *gorm.DB, statType entity.StatType, statKey string) (*entity.SystemStat, error)
	FindByType(db *gorm.DB, statType entity.StatType) ([]entity.SystemStat, error)
	DeleteByTypeAndKey(db *gorm.DB, statType entity.StatType, statKey string) error

	CreateDashboardStat(db *gorm.DB, stat *entity.DashboardStat) error
	FindDashboardStats(db *gorm.DB, activeOnly bool) ([]entity.DashboardStat, error)
	FindDashboardStatByID(db *gorm.DB, id int) (*entity.DashboardStat, error)
	UpdateDashboardStat(db *gorm.DB, stat *entity.DashboardStat) error
	DeleteDashboardStat(db *gorm.DB, stat *entity.DashboardStat) error
}
