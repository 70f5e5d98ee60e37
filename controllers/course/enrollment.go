package controllers

import (
	"elimunova/database"
	"elimunova/middleware"
	"elimunova/models"
	courseModels "elimunova/models/course"
	"elimunova/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the authenticated student in a course. Re-enrollment
// is rejected with a conflict, never silently absorbed; the unique
// (user, course) index backs the same invariant at the data layer.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists and is published
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: uint(courseID),
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error enrolling user %d in course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	go func(email, name, title string) {
		if err := utils.SendEnrollmentEmail(email, name, title); err != nil {
			log.Printf("Error sending enrollment email to %s: %v", email, err)
		}
	}(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the authenticated student's enrollments with course details
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("id asc").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	courseIDs := make([]uint, len(enrollments))
	for i, e := range enrollments {
		courseIDs[i] = e.CourseID
	}

	coursesByID := make(map[uint]courseModels.Course)
	if len(courseIDs) > 0 {
		var courses []courseModels.Course
		if err := db.Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
			log.Printf("Error fetching enrolled courses: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
		}
		for _, course := range courses {
			coursesByID[course.ID] = course
		}
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		Course courseModels.Course `json:"course"`
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		result[i] = EnrollmentWithCourse{Enrollment: e, Course: coursesByID[e.CourseID]}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}
