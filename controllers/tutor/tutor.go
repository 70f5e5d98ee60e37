package tutorController

import (
	"elimunova/config"
	"elimunova/database"
	"elimunova/middleware"
	courseModels "elimunova/models/course"
	"encoding/json"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// ChatMessage is one turn of the tutor transcript. The transcript itself is
// client state; this endpoint is stateless and only relays it.
type ChatMessage struct {
	Role    string `json:"role"` // user, assistant
	Content string `json:"content"`
}

// ChatRequest is the validated payload for a tutor turn.
type ChatRequest struct {
	CourseID uint          `json:"course_id"`
	LessonID uint          `json:"lesson_id"`
	Messages []ChatMessage `json:"messages"`
}

const tutorSystemPrompt = "You are a friendly AI tutor on the Elimunova learning platform. " +
	"Answer questions about the current lesson clearly and encourage the student. " +
	"Keep answers short and concrete."

// Chat forwards the transcript to the configured chat-completion endpoint
// and returns the assistant's reply. Provider failures map to a retryable
// error message, never a crash.
func Chat(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChat").(*ChatRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Tutor access requires enrollment in the course being asked about
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, reqData.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	// Ground the tutor in the lesson the student is viewing
	systemPrompt := tutorSystemPrompt
	if reqData.LessonID != 0 {
		var lesson courseModels.Lesson
		if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", reqData.LessonID, reqData.CourseID, false).First(&lesson).Error; err == nil {
			systemPrompt += " The student is currently on the lesson \"" + lesson.Title + "\"."
		}
	}

	messages := make([]map[string]string, 0, len(reqData.Messages)+1)
	messages = append(messages, map[string]string{"role": "system", "content": systemPrompt})
	for _, m := range reqData.Messages {
		messages = append(messages, map[string]string{"role": m.Role, "content": m.Content})
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.TutorApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model":    config.AppConfig.TutorModel,
			"messages": messages,
		}).
		Post(config.AppConfig.TutorApiURL)
	if err != nil {
		log.Printf("Tutor provider call failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "The AI tutor is unavailable right now. Please try again.", nil)
	}
	if resp.StatusCode() != 200 {
		log.Printf("Tutor provider returned %d: %s", resp.StatusCode(), resp.String())
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "The AI tutor is unavailable right now. Please try again.", nil)
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &completion); err != nil || len(completion.Choices) == 0 {
		log.Printf("Failed to parse tutor provider response: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "The AI tutor returned an invalid response. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tutor reply fetched successfully!", fiber.Map{
		"reply": ChatMessage{Role: "assistant", Content: completion.Choices[0].Message.Content},
	})
}
