package extract

import (
	"context"
	"errors"
	"testing"
)

func TestNormalizeMimeType(t *testing.T) {
	tests := []struct {
		mime string
		name string
		want string
	}{
		{"application/pdf", "resume.pdf", "application/pdf"},
		{"application/pdf; charset=binary", "resume.pdf", "application/pdf"},
		{"application/zip", "resume.docx", mimeDOCX},
		{"application/octet-stream", "resume.pdf", "application/pdf"},
		{"", "photo.jpeg", "image/jpeg"},
		{"image/jpg", "photo.jpg", "image/jpeg"},
		{"", "scan.png", "image/png"},
		{"text/html", "resume.html", "text/html"},
	}
	for _, tt := range tests {
		if got := normalizeMimeType(tt.mime, tt.name); got != tt.want {
			t.Errorf("normalizeMimeType(%q, %q) = %q, want %q", tt.mime, tt.name, got, tt.want)
		}
	}
}

func TestFromBytesUnsupported(t *testing.T) {
	e := New(nil)
	_, err := e.FromBytes(context.Background(), []byte("hello"), "text/html", "resume.html")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFromBytesImageUsesOCR(t *testing.T) {
	e := New(stubOCR{text: "OCR OUT"})
	got, err := e.FromBytes(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg", "scan.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "OCR OUT" {
		t.Errorf("got %q, want OCR output", got)
	}
}

func TestFromBytesImagePlaceholder(t *testing.T) {
	e := New(nil)
	_, err := e.FromBytes(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "image/png", "scan.png")
	if !errors.Is(err, ErrOCRNotConfigured) {
		t.Fatalf("err = %v, want ErrOCRNotConfigured", err)
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document><w:body><w:p><w:r><w:t>Jane Smith</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p></w:body></w:document>`
	got := stripDocxXML(raw)
	want := "Jane Smith\nEngineer"
	if got != want {
		t.Errorf("stripDocxXML = %q, want %q", got, want)
	}
}

type stubOCR struct{ text string }

func (s stubOCR) RecognizeText(ctx context.Context, image []byte) (string, error) {
	return s.text, nil
}
