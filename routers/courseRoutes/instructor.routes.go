package courseRoutes

import (
	controllers "elimunova/controllers/course"
	"elimunova/middleware"
	"elimunova/models"
	validators "elimunova/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up instructor-only routes
func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor))

	instructorGroup.Post("/course", validators.CreateCourse(), controllers.CreateCourse)
	instructorGroup.Get("/analytics", controllers.GetAnalytics)
	instructorGroup.Get("/students", controllers.GetStudents)
}
