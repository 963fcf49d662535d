package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"airesume/resume-builder/internal/layout"
	"airesume/resume-builder/internal/models"
	"airesume/resume-builder/internal/services"
)

type DownloadHandler struct {
	renderer services.PDFRenderer
}

func NewDownloadHandler(renderer services.PDFRenderer) *DownloadHandler {
	return &DownloadHandler{
		renderer: renderer,
	}
}

// HandleDownloadPDF handles POST /download_pdf
func (h *DownloadHandler) HandleDownloadPDF(c *fiber.Ctx) error {
	var req models.DownloadRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "No content provided for PDF generation.",
		})
	}

	doc := layout.Build(req.Content)

	data, err := h.renderer.Render(doc)
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID(c)).Int("blocks", doc.Len()).Msg("❌ PDF rendering failed")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to generate PDF.",
		})
	}

	filename := req.ResolvedFilename()
	log.Debug().Str("request_id", requestID(c)).Str("filename", filename).Int("blocks", doc.Len()).Int("bytes", len(data)).Msg("📄 PDF generated")

	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")

	return c.Status(fiber.StatusOK).Send(data)
}
