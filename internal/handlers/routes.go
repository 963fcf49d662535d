package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"airesume/resume-builder/internal/apperrors"
	"airesume/resume-builder/internal/models"
)

// SetupRoutes registers the API endpoints on app.
func SetupRoutes(app *fiber.App, generate *GenerateHandler, review *ReviewHandler, download *DownloadHandler) {
	app.Post("/generate", generate.HandleGenerate)
	app.Post("/review_upload", review.HandleReviewUpload)
	app.Post("/download_pdf", download.HandleDownloadPDF)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status: "healthy",
			Time:   time.Now(),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AI Resume Builder API is running! Open your index.html file to use the app.")
	})
}

// ErrorHandler renders errors that escape a handler as {error, code}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := apperrors.StatusCode(err)

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

func causeOf(err error) string {
	if appErr, ok := apperrors.As(err); ok {
		return appErr.Cause()
	}
	return err.Error()
}
