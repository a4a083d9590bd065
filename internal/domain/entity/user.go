package entity

import (
	"time"
)

// UserRole is the staff role a user acts under
type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleDoctor       UserRole = "doctor"
	RoleNurse        UserRole = "nurse"
	RoleReceptionist UserRole = "receptionist"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist:
		return true
	}
	return false
}

// User represents a staff account (doctors, nurses, receptionists, admins)
type User struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	FullName       string    `gorm:"type:varchar(100);not null" json:"full_name"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	Role           UserRole  `gorm:"type:varchar(20);not null;default:'doctor';index" json:"role"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
