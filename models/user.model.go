package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values. A role is assigned once at signup and is never updatable
// through the API after that.
const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
)

type User struct {
	gorm.Model
	Name         string    `json:"name" gorm:"default:''"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Password     string    `json:"-" gorm:"not null"`
	ProfileImage string    `json:"profile_image" gorm:"default:''"`
	Bio          string    `json:"bio" gorm:"default:''"`
	LastLogin    time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted    bool      `json:"-" gorm:"default:false"`
}

// UserRole is the authoritative role record, kept apart from the profile so
// profile updates can never touch the access class.
type UserRole struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Role      string `json:"role" gorm:"not null"` // STUDENT, INSTRUCTOR
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
