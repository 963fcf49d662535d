package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"airesume/resume-builder/internal/apperrors"
)

type ReviewService interface {
	Review(ctx context.Context, pdfData []byte, jobDescription string) (string, error)
}

type reviewService struct {
	geminiService GeminiService
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
}

func NewReviewService(geminiService GeminiService, pdfParser PDFParserService) ReviewService {
	return &reviewService{
		geminiService: geminiService,
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
	}
}

// Review extracts the résumé text, checks there is enough of it and asks
// the model for an ATS report. The model output is returned verbatim.
func (r *reviewService) Review(ctx context.Context, pdfData []byte, jobDescription string) (string, error) {
	content, err := r.pdfParser.ExtractTextWithMetaData(pdfData)
	if err != nil {
		return "", err
	}

	if !HasSufficientText(content.Text) {
		return "", apperrors.Parse(unreadablePDFMessage,
			fmt.Errorf("extracted %d characters from %d pages", len(content.Text), content.PageCount))
	}

	log.Debug().
		Int("pages", content.PageCount).
		Int("resume_chars", len(content.Text)).
		Int("job_description_chars", len(jobDescription)).
		Msg("📄 Resume parsed")

	prompt := r.promptBuilder.BuildATSReviewPrompt(content.Text, jobDescription)

	review, err := r.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}

	return review, nil
}
