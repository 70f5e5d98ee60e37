package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued once per (student, course) when every lesson of the
// course is completed.
type Certificate struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course_cert;not null"`
	CourseID     uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course_cert;not null"`
	SerialNumber string    `json:"serial_number" gorm:"unique;not null"`
	IssuedAt     time.Time `json:"issued_at"`
	IsDeleted    bool      `json:"-" gorm:"default:false"`
}
