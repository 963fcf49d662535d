package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"airesume/resume-builder/internal/models"
	"airesume/resume-builder/internal/services"
)

type GenerateHandler struct {
	geminiService services.GeminiService
}

func NewGenerateHandler(geminiService services.GeminiService) *GenerateHandler {
	return &GenerateHandler{
		geminiService: geminiService,
	}
}

// HandleGenerate handles POST /generate
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.PromptRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.TextResponse{
			Text: "Invalid request payload",
		})
	}

	text, err := h.geminiService.GenerateText(c.UserContext(), req.Prompt)
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID(c)).Msg("❌ Gemini API error on /generate")
		return c.Status(fiber.StatusInternalServerError).JSON(models.TextResponse{
			Text: fmt.Sprintf("Error generating content: %s. Check server logs.", causeOf(err)),
		})
	}

	return c.JSON(models.TextResponse{Text: text})
}
