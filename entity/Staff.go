package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type Staff struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:staff" json:"role"`
}

func (Staff) TableName() string {
	return "staff"
}
