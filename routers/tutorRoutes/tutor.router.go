package tutorRoutes

import (
	tutorControllers "elimunova/controllers/tutor"
	"elimunova/middleware"
	"elimunova/models"
	tutorValidators "elimunova/validators/tutor"

	"github.com/gofiber/fiber/v2"
)

func SetupTutorRoutes(app *fiber.App) {
	tutorGroup := app.Group("/tutor")

	tutorGroup.Post("/chat", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), tutorValidators.Chat(), tutorControllers.Chat)
}
