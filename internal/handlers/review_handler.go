package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"airesume/resume-builder/internal/apperrors"
	"airesume/resume-builder/internal/models"
	"airesume/resume-builder/internal/services"
)

const (
	resumeFileField     = "resumeFile"
	jobDescriptionField = "reviewJobDescription"
)

type ReviewHandler struct {
	uploadService services.UploadService
	reviewService services.ReviewService
}

func NewReviewHandler(
	uploadService services.UploadService,
	reviewService services.ReviewService,
) *ReviewHandler {
	return &ReviewHandler{
		uploadService: uploadService,
		reviewService: reviewService,
	}
}

// HandleReviewUpload handles POST /review_upload
func (h *ReviewHandler) HandleReviewUpload(c *fiber.Ctx) error {
	file, err := c.FormFile(resumeFileField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.TextResponse{
			Text: "No file uploaded.",
		})
	}

	req := models.ReviewRequest{
		FileName:       file.Filename,
		JobDescription: c.FormValue(jobDescriptionField),
	}

	req.Data, err = h.uploadService.ReadPDF(file)
	if err != nil {
		return h.reviewError(c, req, err)
	}

	review, err := h.reviewService.Review(c.UserContext(), req.Data, req.JobDescription)
	if err != nil {
		return h.reviewError(c, req, err)
	}

	return c.JSON(models.TextResponse{Text: review})
}

func (h *ReviewHandler) reviewError(c *fiber.Ctx, req models.ReviewRequest, err error) error {
	status := apperrors.StatusCode(err)

	event := log.Warn()
	if status >= fiber.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("request_id", requestID(c)).
		Str("filename", req.FileName).
		Int("size", len(req.Data)).
		Msg("⚠️ Review upload failed")

	text := "Error during review. Check server logs."
	if appErr, ok := apperrors.As(err); ok {
		switch appErr.Kind {
		case apperrors.KindProvider:
			text = fmt.Sprintf("Error during review: %s. Make sure the job description is long enough.", appErr.Cause())
		default:
			text = appErr.Message
		}
	}

	return c.Status(status).JSON(models.TextResponse{Text: text})
}
