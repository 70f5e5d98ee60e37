package utils

import (
	"elimunova/database"
	"elimunova/models"
	courseModels "elimunova/models/course"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"
)

// InitializeDigestScheduler sets up the weekly instructor digest scheduler
func InitializeDigestScheduler() {
	log.Println("[DIGEST-SCHEDULER] Initializing instructor digest scheduler...")

	c := cron.New()

	// Run every Monday at 8 AM
	c.AddFunc("0 8 * * 1", func() {
		log.Println("[DIGEST-SCHEDULER] Running weekly instructor digest...")
		SendInstructorDigests()
	})

	c.Start()
	log.Println("[DIGEST-SCHEDULER] Instructor digest scheduler started - runs Mondays at 8 AM")
}

// SendInstructorDigests mails each instructor a summary of their courses'
// enrollments and completion rates.
func SendInstructorDigests() {
	db := database.Database.Db

	var roles []models.UserRole
	if err := db.Where("role = ? AND is_deleted = ?", models.RoleInstructor, false).Find(&roles).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error fetching instructors: %v", err)
		return
	}

	log.Printf("[DIGEST-SCHEDULER] Found %d instructors", len(roles))

	for _, role := range roles {
		var instructor models.User
		if err := db.Where("id = ? AND is_deleted = ?", role.UserID, false).First(&instructor).Error; err != nil {
			log.Printf("[DIGEST-SCHEDULER] Error fetching instructor %d: %v", role.UserID, err)
			continue
		}

		stats, err := instructorCourseStats(instructor.ID)
		if err != nil {
			log.Printf("[DIGEST-SCHEDULER] Error computing stats for instructor %d: %v", instructor.ID, err)
			continue
		}
		if len(stats) == 0 {
			continue
		}

		var rows strings.Builder
		for _, stat := range stats {
			rows.WriteString(fmt.Sprintf(
				`<tr><td style="padding: 6px;">%s</td><td style="padding: 6px;">%d</td><td style="padding: 6px;">%d%%</td></tr>`,
				stat.Title, stat.Enrollments, stat.CompletionRate,
			))
		}

		if err := SendInstructorDigestEmail(instructor.Email, instructor.Name, rows.String()); err != nil {
			log.Printf("[DIGEST-SCHEDULER] Error sending digest to %s: %v", instructor.Email, err)
		}
	}
}

// instructorCourseStats batch-loads one instructor's rows and computes the
// per-course rollup in memory.
func instructorCourseStats(instructorID uint) ([]courseModels.CourseStat, error) {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("instructor_id = ? AND is_deleted = ?", instructorID, false).Order("id asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}

	courseIDs := make([]uint, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
	}

	var enrollments []courseModels.Enrollment
	if err := db.Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Find(&enrollments).Error; err != nil {
		return nil, err
	}

	var lessons []courseModels.Lesson
	if err := db.Select("id, course_id").Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Find(&lessons).Error; err != nil {
		return nil, err
	}

	var progress []courseModels.LessonProgress
	lessonIDs := make([]uint, len(lessons))
	for i, lesson := range lessons {
		lessonIDs[i] = lesson.ID
	}
	if len(lessonIDs) > 0 {
		if err := db.Where("lesson_id IN ? AND is_deleted = ?", lessonIDs, false).Find(&progress).Error; err != nil {
			return nil, err
		}
	}

	return courseModels.BuildCourseStats(courses, enrollments, lessons, progress), nil
}
