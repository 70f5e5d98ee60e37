package course

import "gorm.io/gorm"

// Lesson belongs to one course; OrderIndex defines the display sequence and
// is unique within a course.
type Lesson struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"uniqueIndex:idx_course_order;not null"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`
	VideoURL   string `json:"video_url"`
	Duration   int    `json:"duration" gorm:"default:0"` // minutes
	OrderIndex int    `json:"order_index" gorm:"uniqueIndex:idx_course_order;not null"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
