package controllers

import (
	"elimunova/database"
	"elimunova/middleware"
	courseModels "elimunova/models/course"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestCertificate issues a certificate once every lesson of the course is
// completed. Completion is recomputed from raw progress rows here too; a
// stale stored flag can never mint a certificate.
func RequestCertificate(c *fiber.Ctx) error {
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

	percent, _, total, err := courseProgressFor(db, userID, uint(courseID))
	if err != nil {
		log.Printf("Error computing progress for certificate, user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify course completion!", nil)
	}

	if total == 0 || percent < 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
	}

	// Check if certificate already exists
	var existing courseModels.Certificate
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued!", fiber.Map{
			"certificate": existing,
		})
	}

	certificate := courseModels.Certificate{
		UserID:       userID,
		CourseID:     uint(courseID),
		SerialNumber: uuid.NewString(),
		IssuedAt:     time.Now(),
	}

	tx := db.Begin()
	if err := tx.Create(&certificate).Error; err != nil {
		tx.Rollback()
		log.Printf("Error issuing certificate for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued successfully!", certificate)
}

// GetUserCertificates lists the viewer's certificates with course titles
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var certificates []courseModels.Certificate
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("id asc").Find(&certificates).Error; err != nil {
		log.Printf("Error fetching certificates for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	courseIDs := make([]uint, len(certificates))
	for i, cert := range certificates {
		courseIDs[i] = cert.CourseID
	}

	titles := make(map[uint]string)
	if len(courseIDs) > 0 {
		var courses []courseModels.Course
		if err := db.Select("id, title").Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
			log.Printf("Error fetching certificate courses: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
		}
		for _, course := range courses {
			titles[course.ID] = course.Title
		}
	}

	type CertificateWithCourse struct {
		courseModels.Certificate
		CourseTitle string `json:"course_title"`
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		result[i] = CertificateWithCourse{Certificate: cert, CourseTitle: titles[cert.CourseID]}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}
