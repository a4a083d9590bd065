package repository

import (
	"medicore/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id int) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindAll(db *gorm.DB, skip, limit int) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, user *entity.User) error
	CountAll(db *gorm.DB) (int64, error)
	CountActive(db *gorm.DB) (int64, error)
}
