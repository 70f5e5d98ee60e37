package controllers

import (
	"elimunova/database"
	"elimunova/middleware"
	"elimunova/models"
	courseModels "elimunova/models/course"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseListItem is a catalog entry annotated with instructor name, lesson
// count and, for student viewers, the enrollment flag.
type CourseListItem struct {
	courseModels.Course
	InstructorName string `json:"instructor_name"`
	LessonCount    int    `json:"lesson_count"`
	IsEnrolled     bool   `json:"is_enrolled"`
}

// FilterCourses applies a case-insensitive substring match across title,
// description and category. An empty query keeps everything. Order is
// preserved.
func FilterCourses(items []CourseListItem, query string) []CourseListItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	filtered := make([]CourseListItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.Category), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// GetAllCourses lists published courses for the catalog. The whole set is
// fetched and annotated, then the search filter runs in memory.
func GetAllCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_published = ? AND is_deleted = ?", true, false).Order("id asc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	courseIDs := make([]uint, len(courses))
	instructorIDs := make([]uint, 0, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
		instructorIDs = append(instructorIDs, course.InstructorID)
	}

	// Batch lookups: instructor names and lesson counts
	instructorNames := make(map[uint]string)
	if len(instructorIDs) > 0 {
		var instructors []models.User
		if err := db.Where("id IN ?", instructorIDs).Find(&instructors).Error; err != nil {
			log.Printf("Error fetching instructors: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
		for _, instructor := range instructors {
			instructorNames[instructor.ID] = instructor.Name
		}
	}

	lessonCounts := make(map[uint]int)
	if len(courseIDs) > 0 {
		var lessons []courseModels.Lesson
		if err := db.Select("id, course_id").Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Find(&lessons).Error; err != nil {
			log.Printf("Error fetching lessons: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
		for _, lesson := range lessons {
			lessonCounts[lesson.CourseID]++
		}
	}

	// The enrollment flag only applies to student viewers
	enrolled := make(map[uint]bool)
	role, err := middleware.LookupRole(db, userID)
	if err != nil {
		log.Printf("Error fetching role for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	if role == models.RoleStudent {
		var enrollments []courseModels.Enrollment
		if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&enrollments).Error; err != nil {
			log.Printf("Error fetching enrollments: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
		for _, e := range enrollments {
			enrolled[e.CourseID] = true
		}
	}

	items := make([]CourseListItem, len(courses))
	for i, course := range courses {
		items[i] = CourseListItem{
			Course:         course,
			InstructorName: instructorNames[course.InstructorID],
			LessonCount:    lessonCounts[course.ID],
			IsEnrolled:     enrolled[course.ID],
		}
	}

	items = FilterCourses(items, c.Query("search"))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": items,
		"total":   len(items),
	})
}

// GetCourseDetails returns a course with its ordered lessons and, for the
// viewer, enrollment state and per-lesson completion.
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var instructor models.User
	db.Where("id = ?", course.InstructorID).First(&instructor)

	var lessons []courseModels.Lesson
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&lessons).Error; err != nil {
		log.Printf("Error fetching lessons for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
	}

	var enrollment courseModels.Enrollment
	isEnrolled := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error == nil

	type LessonWithState struct {
		courseModels.Lesson
		Completed bool `json:"completed"`
	}

	result := make([]LessonWithState, len(lessons))
	if isEnrolled {
		var progress []courseModels.LessonProgress
		if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&progress).Error; err != nil {
			log.Printf("Error fetching progress for course %d: %v", courseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
		}
		completed := courseModels.CompletedLessonSet(progress)
		for i, lesson := range lessons {
			result[i] = LessonWithState{Lesson: lesson, Completed: completed[userID][lesson.ID]}
		}
	} else {
		for i, lesson := range lessons {
			result[i] = LessonWithState{Lesson: lesson}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":          course,
		"instructor_name": instructor.Name,
		"lessons":         result,
		"is_enrolled":     isEnrolled,
	})
}

// CreateCourseRequest is the validated payload for course creation.
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Duration    string `json:"duration"`
	Lessons     []struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		VideoURL string `json:"video_url"`
		Duration int    `json:"duration"`
	} `json:"lessons"`
}

// CreateCourse creates a course with its lesson list. Instructor role is
// enforced on the route.
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Level:        reqData.Level,
		Duration:     reqData.Duration,
		InstructorID: userID,
		IsPublished:  true,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&course).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	lessons := make([]courseModels.Lesson, len(reqData.Lessons))
	for i, l := range reqData.Lessons {
		lessons[i] = courseModels.Lesson{
			CourseID:   course.ID,
			Title:      l.Title,
			Content:    l.Content,
			VideoURL:   l.VideoURL,
			Duration:   l.Duration,
			OrderIndex: i + 1,
		}
	}
	if len(lessons) > 0 {
		if err := tx.Create(&lessons).Error; err != nil {
			tx.Rollback()
			log.Printf("Error creating lessons: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", fiber.Map{
		"course":  course,
		"lessons": lessons,
	})
}
