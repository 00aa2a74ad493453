package controllers

import (
	"context"
	"io"
	"log"
	"sync"

	"Backend-PlacementCell/src/services/aiassist"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	aiOnce    sync.Once
	aiService *aiassist.Service
	aiInitErr error
)

// getAIService lazily builds the Gemini client so the server boots fine
// without an API key; AI routes just return 503 in that case.
func getAIService() (*aiassist.Service, error) {
	aiOnce.Do(func() {
		aiService, aiInitErr = aiassist.NewService(context.Background())
		if aiInitErr != nil {
			log.Println("⚠️ AI assist unavailable:", aiInitErr)
		}
	})
	return aiService, aiInitErr
}

// ParseResumeAI godoc
// @Summary Extract profile sections from a resume
// @Description Runs the uploaded resume through the language model and returns structured sections
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF)"
// @Success 200 {object} aiassist.ParsedResume
// @Failure 503 {object} models.ErrorResponse
// @Router /ai/parse-resume [post]
func ParseResumeAI(c *fiber.Ctx) error {
	svc, err := getAIService()
	if err != nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "AI assist is not configured")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Resume file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to read file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to read file")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/pdf"
	}

	parsed, err := svc.ParseResume(c.UserContext(), data, mimeType)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(parsed)
}

// FormatResumeAI godoc
// @Summary Generate a formatted resume
// @Description Turns profile data into a clean HTML resume
// @Tags ai
// @Accept json
// @Produce json
// @Param profile body aiassist.FormatResumeRequest true "Profile data"
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} models.ErrorResponse
// @Router /ai/format-resume [post]
func FormatResumeAI(c *fiber.Ctx) error {
	svc, err := getAIService()
	if err != nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "AI assist is not configured")
	}

	var req aiassist.FormatResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	html, err := svc.FormatResume(c.UserContext(), req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(fiber.Map{"html": html})
}

// ScoreHirabilityAI godoc
// @Summary Score a student against a drive
// @Description Returns a 0-100 hirability score with a short rationale
// @Tags ai
// @Accept json
// @Produce json
// @Param request body aiassist.HirabilityRequest true "Student and drive data"
// @Success 200 {object} aiassist.HirabilityResult
// @Failure 503 {object} models.ErrorResponse
// @Router /ai/hirability [post]
func ScoreHirabilityAI(c *fiber.Ctx) error {
	svc, err := getAIService()
	if err != nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "AI assist is not configured")
	}

	var req aiassist.HirabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	result, err := svc.ScoreHirability(c.UserContext(), req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(result)
}

// GenerateEmailTemplateAI godoc
// @Summary Draft a notification email
// @Description Drafts a subject and body for a recruitment stage announcement
// @Tags ai
// @Accept json
// @Produce json
// @Param request body aiassist.EmailTemplateRequest true "Stage and context"
// @Success 200 {object} aiassist.EmailTemplate
// @Failure 503 {object} models.ErrorResponse
// @Router /ai/email-template [post]
func GenerateEmailTemplateAI(c *fiber.Ctx) error {
	svc, err := getAIService()
	if err != nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "AI assist is not configured")
	}

	var req aiassist.EmailTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	tmpl, err := svc.GenerateEmailTemplate(c.UserContext(), req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(tmpl)
}
