package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"airesume/resume-builder/internal/apperrors"
)

// MinResumeTextLength is the shortest trimmed text accepted as a readable
// résumé. Scanned PDFs usually yield little or nothing.
const MinResumeTextLength = 50

const unreadablePDFMessage = "Could not read text from PDF. Ensure the PDF is not an image scan."

type PDFParserService interface {
	ExtractText(data []byte) (string, error)
	ExtractTextWithMetaData(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText concatenates the plain text of every page in page order.
// Any failure, including a panic inside the PDF library on malformed
// input, is reported as a parse error.
func (p *pdfParserService) ExtractText(data []byte) (string, error) {
	content, err := p.ExtractTextWithMetaData(data)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(data []byte) (content *PDFContent, err error) {
	if len(data) == 0 {
		return nil, apperrors.Parse(unreadablePDFMessage, errors.New("empty file"))
	}

	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = apperrors.Parse(unreadablePDFMessage, fmt.Errorf("pdf library panic: %v", r))
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperrors.Parse(unreadablePDFMessage, fmt.Errorf("failed to open PDF: %w", err))
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, apperrors.Parse(unreadablePDFMessage, fmt.Errorf("failed to read page %d: %w", pageIndex, err))
		}

		textBuilder.WriteString(text)
	}

	return &PDFContent{
		Text:      textBuilder.String(),
		PageCount: totalPage,
	}, nil
}

// HasSufficientText reports whether extracted text is long enough to be
// reviewed.
func HasSufficientText(text string) bool {
	return len([]rune(strings.TrimSpace(text))) >= MinResumeTextLength
}
