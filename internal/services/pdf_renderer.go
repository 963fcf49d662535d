package services

import (
	"bytes"
	"fmt"
	"html"

	"github.com/go-pdf/fpdf"

	"airesume/resume-builder/internal/layout"
)

const (
	pdfFontFamily = "Helvetica"
	// Line height as a multiple of the font size.
	pdfLeading = 1.2
)

type PDFRenderer interface {
	Render(doc layout.Document) ([]byte, error)
}

type PDFRendererOptions struct {
	PageSize string
	Margin   float64
	Title    string
}

type pdfRenderer struct {
	opts PDFRendererOptions
}

func NewPDFRenderer(opts PDFRendererOptions) PDFRenderer {
	if opts.PageSize == "" {
		opts.PageSize = "Letter"
	}
	if opts.Margin <= 0 {
		opts.Margin = 72
	}
	if opts.Title == "" {
		opts.Title = "Resume"
	}
	return &pdfRenderer{opts: opts}
}

// Render lays the blocks out top to bottom on as many pages as needed.
// Block text is entity-escaped markup; it is unescaped and mapped to the
// cp1252 encoding of the core fonts before drawing.
func (p *pdfRenderer) Render(doc layout.Document) ([]byte, error) {
	pdf := fpdf.New("P", "pt", p.opts.PageSize, "")
	pdf.SetMargins(p.opts.Margin, p.opts.Margin, p.opts.Margin)
	pdf.SetAutoPageBreak(true, p.opts.Margin)
	pdf.SetTitle(p.opts.Title, false)
	pdf.SetCreator("resume-builder", false)
	pdf.AddPage()

	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()

	for _, block := range doc.Blocks {
		style := block.Style

		if block.Kind == layout.KindSpacer {
			pdf.Ln(style.SpaceAfter)
			continue
		}

		fontStyle := ""
		if style.Bold {
			fontStyle = "B"
		}
		pdf.SetFont(pdfFontFamily, fontStyle, style.FontSize)

		align := "L"
		if style.Align == layout.AlignCenter {
			align = "C"
		}

		pdf.SetX(left + style.LeftIndent)
		width := pageWidth - left - right - style.LeftIndent
		text := translate(html.UnescapeString(block.Text))

		pdf.MultiCell(width, style.FontSize*pdfLeading, text, "", align, false)
		pdf.Ln(style.SpaceAfter)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}
