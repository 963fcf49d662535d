package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"airesume/resume-builder/internal/apperrors"
)

const invalidFileMessage = "Invalid file. Please upload a PDF."

// UploadService validates an uploaded résumé and reads it into memory.
// Uploads are never written to disk.
type UploadService interface {
	ValidateFilename(filename string) error
	ReadPDF(file *multipart.FileHeader) ([]byte, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

// ValidateFilename accepts any non-empty name ending in ".pdf", ignoring case.
func (s *uploadService) ValidateFilename(filename string) error {
	if filename == "" {
		return apperrors.Validation(invalidFileMessage)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return apperrors.Validation(invalidFileMessage)
	}

	return nil
}

func (s *uploadService) ReadPDF(file *multipart.FileHeader) ([]byte, error) {
	if err := s.ValidateFilename(file.Filename); err != nil {
		return nil, err
	}

	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, apperrors.Validation(fmt.Sprintf("File too large. Max size: %d bytes", s.maxFileSize))
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.Parse(unreadablePDFMessage, fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, apperrors.Parse(unreadablePDFMessage, fmt.Errorf("failed to read uploaded file: %w", err))
	}

	return data, nil
}
