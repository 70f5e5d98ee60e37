package course

import "gorm.io/gorm"

// Course represents a browsable course owned by one instructor
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Level        string `json:"level"`                     // Beginner, Intermediate, Advanced, All Levels
	Duration     string `json:"duration"`                  // e.g. "8 weeks"
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	IsPublished  bool   `json:"is_published" gorm:"default:true"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
