package course

import "gorm.io/gorm"

// Enrollment links one student to one course. The composite unique index
// backs the one-enrollment-per-(student, course) invariant; handlers surface
// the duplicate as a conflict instead of masking it.
type Enrollment struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID  uint `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	IsDeleted bool `json:"-" gorm:"default:false"`
}
