package controllers

import (
	"elimunova/database"
	"elimunova/middleware"
	courseModels "elimunova/models/course"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// MarkLessonComplete records a completed lesson for the authenticated
// student. Duplicate completions are rejected with a conflict. Course
// progress moves only through these rows; nothing stores a percentage.
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Lesson must belong to the course
	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in this course!", nil)
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	// Check if lesson is already marked as completed
	var existing courseModels.LessonProgress
	if err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already marked as completed!", nil)
	}

	now := time.Now()
	progress := courseModels.LessonProgress{
		UserID:      userID,
		LessonID:    uint(lessonID),
		CourseID:    uint(courseID),
		Completed:   true,
		CompletedAt: &now,
	}

	tx := db.Begin()
	if err := tx.Create(&progress).Error; err != nil {
		tx.Rollback()
		log.Printf("Error marking lesson %d complete for user %d: %v", lessonID, userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson as completed!", nil)
	}
	tx.Commit()

	percent, completed, total, err := courseProgressFor(db, userID, uint(courseID))
	if err != nil {
		log.Printf("Error recomputing progress for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed successfully!", progress)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed successfully!", fiber.Map{
		"progress":          progress,
		"course_progress":   percent,
		"completed_lessons": completed,
		"total_lessons":     total,
	})
}

// courseProgressFor recomputes one student's completion for one course from
// the raw lesson and progress rows.
func courseProgressFor(db *gorm.DB, userID, courseID uint) (percent, completed, total int, err error) {
	var lessons []courseModels.Lesson
	if err = db.Select("id").Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&lessons).Error; err != nil {
		return 0, 0, 0, err
	}

	lessonIDs := make([]uint, len(lessons))
	for i, l := range lessons {
		lessonIDs[i] = l.ID
	}

	var rows []courseModels.LessonProgress
	if len(lessonIDs) > 0 {
		if err = db.Where("user_id = ? AND lesson_id IN ? AND is_deleted = ?", userID, lessonIDs, false).Find(&rows).Error; err != nil {
			return 0, 0, 0, err
		}
	}

	for _, row := range rows {
		if row.Completed {
			completed++
		}
	}
	total = len(lessonIDs)
	return courseModels.CompletionPercent(completed, total), completed, total, nil
}

// GetCourseProgress returns the viewer's recomputed completion for one course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	percent, completed, total, err := courseProgressFor(db, userID, uint(courseID))
	if err != nil {
		log.Printf("Error computing progress for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"course_progress":   percent,
		"completed_lessons": completed,
		"total_lessons":     total,
	})
}

// EnrolledCourseProgress is one dashboard row for an enrolled course.
type EnrolledCourseProgress struct {
	Course           courseModels.Course `json:"course"`
	CourseProgress   int                 `json:"course_progress"`
	CompletedLessons int                 `json:"completed_lessons"`
	TotalLessons     int                 `json:"total_lessons"`
}

// StudentDashboard aggregates the viewer's enrollments into per-course and
// overall completion. Courses resolve concurrently and independently: one
// failed course is skipped and counted, its siblings still compute.
func StudentDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("id asc").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	rows := make([]*EnrolledCourseProgress, len(enrollments))
	failed := make([]bool, len(enrollments))

	g := new(errgroup.Group)
	for i, enrollment := range enrollments {
		i, enrollment := i, enrollment
		g.Go(func() error {
			var course courseModels.Course
			if err := db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).First(&course).Error; err != nil {
				log.Printf("Skipping course %d on dashboard for user %d: %v", enrollment.CourseID, userID, err)
				failed[i] = true
				return nil
			}
			percent, completed, total, err := courseProgressFor(db, userID, enrollment.CourseID)
			if err != nil {
				log.Printf("Skipping course %d on dashboard for user %d: %v", enrollment.CourseID, userID, err)
				failed[i] = true
				return nil
			}
			rows[i] = &EnrolledCourseProgress{
				Course:           course,
				CourseProgress:   percent,
				CompletedLessons: completed,
				TotalLessons:     total,
			}
			return nil
		})
	}
	g.Wait()

	result := make([]EnrolledCourseProgress, 0, len(enrollments))
	perCourse := make([]int, 0, len(enrollments))
	failedCourses := 0
	for i := range enrollments {
		if failed[i] || rows[i] == nil {
			failedCourses++
			continue
		}
		result = append(result, *rows[i])
		perCourse = append(perCourse, rows[i].CourseProgress)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"courses":          result,
		"total_courses":    len(result),
		"overall_progress": courseModels.MeanPercent(perCourse),
		"failed_courses":   failedCourses,
	})
}
