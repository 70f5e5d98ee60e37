package tutorValidator

import (
	tutorController "elimunova/controllers/tutor"
	"elimunova/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func Chat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(tutorController.ChatRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if len(reqData.Messages) == 0 {
			errors["messages"] = "At least one message is required!"
		}
		for _, m := range reqData.Messages {
			if m.Role != "user" && m.Role != "assistant" {
				errors["messages"] = "Message role must be user or assistant!"
				break
			}
			if strings.TrimSpace(m.Content) == "" {
				errors["messages"] = "Messages cannot be empty!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChat", reqData)
		return c.Next()
	}
}
