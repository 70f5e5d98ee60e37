package courseRoutes

import (
	controllers "elimunova/controllers/course"
	"elimunova/middleware"
	"elimunova/models"
	validators "elimunova/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog browsing (any authenticated user)
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment (students only)
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.CourseID(), controllers.EnrollInCourse)

	// Lesson completion and progress
	courseGroup.Post("/:course_id/lesson/:lesson_id/complete", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.LessonRef(), controllers.MarkLessonComplete)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)

	// Certificates
	courseGroup.Post("/:id/certificate", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.CourseID(), controllers.RequestCertificate)

	// Student home
	studentGroup := app.Group("/student", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent))
	studentGroup.Get("/dashboard", controllers.StudentDashboard)
	studentGroup.Get("/enrollments", controllers.GetEnrollments)
	studentGroup.Get("/certificates", controllers.GetUserCertificates)
}
