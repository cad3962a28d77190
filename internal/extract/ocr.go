package extract

import (
	"context"
	"errors"
)

// OCRClient abstracts OCR providers for image-based resumes.
type OCRClient interface {
	RecognizeText(ctx context.Context, image []byte) (string, error)
}

// ErrOCRNotConfigured is returned by the placeholder client.
var ErrOCRNotConfigured = errors.New("ocr not configured")

// PlaceholderOCR is a stub implementation until provider wiring is added.
type PlaceholderOCR struct{}

// RecognizeText returns ErrOCRNotConfigured.
func (PlaceholderOCR) RecognizeText(ctx context.Context, image []byte) (string, error) {
	_ = ctx
	_ = image
	return "", ErrOCRNotConfigured
}
