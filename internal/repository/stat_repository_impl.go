package repository

import (
	"errors"

	"medicore/internal/domain/entity"
	domainRepo "medicore/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type statRepository struct{}

func NewStatRepository() domainRepo.StatRepository {
	return &statRepository{}
}

// Upsert writes a cache entry, replacing any prior value for the same
// (stat_type, stat_key) pair
func (r *statRepository) Upsert(db *gorm.DB, stat *entity.SystemStat) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "stat_type"}, {Name: "stat_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"int_value", "float_value", "text_value",
			"period_start", "period_end", "description", "updated_at",
		}),
	}).Create(stat).Error
}

func (r *statRepository) FindByTypeAndKey(db *gorm.DB, statType entity.StatType, statKey string) (*entity.SystemStat, error) {
	var stat entity.SystemStat
	err := db.Where("stat_type = ? AND stat_key = ?", statType, statKey).First(&stat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stat, nil
}

func (r *statRepository) FindByType(db *gorm.DB, statType entity.StatType) ([]entity.SystemStat, error) {
	var stats []entity.SystemStat
	err := db.Where("stat_type = ?", statType).Order("stat_key").Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statRepository) DeleteByTypeAndKey(db *gorm.DB, statType entity.StatType, statKey string) error {
	return db.Where("stat_type = ? AND stat_key = ?", statType, statKey).
		Delete(&entity.SystemStat{}).Error
}

func (r *statRepository) CreateDashboardStat(db *gorm.DB, stat *entity.DashboardStat) error {
	return db.Create(stat).Error
}

func (r *statRepository) FindDashboardStats(db *gorm.DB, activeOnly bool) ([]entity.DashboardStat, error) {
	var stats []entity.DashboardStat
	query := db.Order("position")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statRepository) FindDashboardStatByID(db *gorm.DB, id int) (*entity.DashboardStat, error) {
	var stat entity.DashboardStat
	err := db.Where("id = ?", id).First(&stat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stat, nil
}

func (r *statRepository) UpdateDashboardStat(db *gorm.DB, stat *entity.DashboardStat) error {
	return db.Save(stat).Error
}

func (r *statRepository) DeleteDashboardStat(db *gorm.DB, stat *entity.DashboardStat) error {
	return db.Delete(stat).Error
}
