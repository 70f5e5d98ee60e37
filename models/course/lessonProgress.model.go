package course

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress records one student's completion of one lesson. Completion
// percentages are always recomputed from these rows plus lesson membership;
// no stored percentage is trusted anywhere.
type LessonProgress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID    uint       `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	CourseID    uint       `json:"course_id" gorm:"index;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `json:"-" gorm:"default:false"`
}
