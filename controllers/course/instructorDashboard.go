package controllers

import (
	"elimunova/database"
	"elimunova/middleware"
	"elimunova/models"
	courseModels "elimunova/models/course"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetAnalytics computes the instructor's rollup: course count, distinct
// students, enrollments and per-course completion rates. Everything is
// batch-fetched up front (courses, then enrollments/lessons/progress by id
// sets) and the math runs in memory, so there is no per-row query loop.
func GetAnalytics(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("instructor_id = ? AND is_deleted = ?", userID, false).Order("id asc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses for instructor %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
			"total_courses":     0,
			"total_students":    0,
			"total_enrollments": 0,
			"average_progress":  0,
			"course_stats":      []courseModels.CourseStat{},
		})
	}

	courseIDs := make([]uint, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
	}

	var enrollments []courseModels.Enrollment
	if err := db.Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for instructor %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	var lessons []courseModels.Lesson
	if err := db.Select("id, course_id").Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Find(&lessons).Error; err != nil {
		log.Printf("Error fetching lessons for instructor %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	var progress []courseModels.LessonProgress
	lessonIDs := make([]uint, len(lessons))
	for i, lesson := range lessons {
		lessonIDs[i] = lesson.ID
	}
	if len(lessonIDs) > 0 {
		if err := db.Where("lesson_id IN ? AND is_deleted = ?", lessonIDs, false).Find(&progress).Error; err != nil {
			log.Printf("Error fetching progress rows for instructor %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
		}
	}

	stats := courseModels.BuildCourseStats(courses, enrollments, lessons, progress)

	uniqueStudents := make(map[uint]bool)
	for _, e := range enrollments {
		uniqueStudents[e.UserID] = true
	}

	rates := make([]int, len(stats))
	for i, stat := range stats {
		rates[i] = stat.CompletionRate
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
		"total_courses":     len(courses),
		"total_students":    len(uniqueStudents),
		"total_enrollments": len(enrollments),
		"average_progress":  courseModels.MeanPercent(rates),
		"course_stats":      stats,
	})
}

// StudentRosterRow is one student enrollment across the instructor's courses.
type StudentRosterRow struct {
	EnrollmentID uint      `json:"enrollment_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	CourseTitle  string    `json:"course_title"`
	EnrolledAt   time.Time `json:"enrolled_at"`
	Progress     int       `json:"progress"`
}

// FilterRoster applies a case-insensitive substring match across student
// name, email and course title.
func FilterRoster(rows []StudentRosterRow, query string) []StudentRosterRow {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	filtered := make([]StudentRosterRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.StudentName), q) ||
			strings.Contains(strings.ToLower(row.StudentEmail), q) ||
			strings.Contains(strings.ToLower(row.CourseTitle), q) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// GetStudents lists every enrollment across the instructor's courses with
// the student's identity and recomputed progress.
func GetStudents(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("instructor_id = ? AND is_deleted = ?", userID, false).Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses for instructor %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
			"students": []StudentRosterRow{},
			"total":    0,
		})
	}

	courseIDs := make([]uint, len(courses))
	titles := make(map[uint]string)
	for i, course := range courses {
		courseIDs[i] = course.ID
		titles[course.ID] = course.Title
	}

	var enrollments []courseModels.Enrollment
	if err := db.Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Order("id asc").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for instructor %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	studentIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		studentIDs = append(studentIDs, e.UserID)
	}

	studentsByID := make(map[uint]models.User)
	if len(studentIDs) > 0 {
		var students []models.User
		if err := db.Where("id IN ?", studentIDs).Find(&students).Error; err != nil {
			log.Printf("Error fetching students for instructor %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
		}
		for _, s := range students {
			studentsByID[s.ID] = s
		}
	}

	var lessons []courseModels.Lesson
	if err := db.Select("id, course_id").Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Find(&lessons).Error; err != nil {
		log.Printf("Error fetching lessons for instructor %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	lessonIDs := make([]uint, len(lessons))
	lessonsByCourse := make(map[uint][]uint)
	for i, lesson := range lessons {
		lessonIDs[i] = lesson.ID
		lessonsByCourse[lesson.CourseID] = append(lessonsByCourse[lesson.CourseID], lesson.ID)
	}

	var progress []courseModels.LessonProgress
	if len(lessonIDs) > 0 {
		if err := db.Where("lesson_id IN ? AND is_deleted = ?", lessonIDs, false).Find(&progress).Error; err != nil {
			log.Printf("Error fetching progress rows for instructor %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
		}
	}
	completedByUser := courseModels.CompletedLessonSet(progress)

	rows := make([]StudentRosterRow, len(enrollments))
	for i, e := range enrollments {
		student := studentsByID[e.UserID]
		courseLessons := lessonsByCourse[e.CourseID]
		completed := 0
		for _, lessonID := range courseLessons {
			if completedByUser[e.UserID][lessonID] {
				completed++
			}
		}
		rows[i] = StudentRosterRow{
			EnrollmentID: e.ID,
			StudentName:  student.Name,
			StudentEmail: student.Email,
			CourseTitle:  titles[e.CourseID],
			EnrolledAt:   e.CreatedAt,
			Progress:     courseModels.CompletionPercent(completed, len(courseLessons)),
		}
	}

	rows = FilterRoster(rows, c.Query("search"))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": rows,
		"total":    len(rows),
	})
}
