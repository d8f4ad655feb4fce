package extract

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestNormalizePlainText(t *testing.T) {
	result, err := Normalize("notes.txt", "text/plain", []byte("solar power basics"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Attachment != nil {
		t.Error("Expected no attachment for plain text")
	}
	expected := "[content from notes.txt]:\nsolar power basics"
	if result.Text != expected {
		t.Errorf("Expected %q, got %q", expected, result.Text)
	}
}

func TestNormalizeMarkdown(t *testing.T) {
	result, err := Normalize("readme.md", "text/markdown", []byte("# Heading"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(result.Text, "[content from readme.md]:") {
		t.Errorf("Missing provenance header: %q", result.Text)
	}
}

func TestNormalizePDFPassthrough(t *testing.T) {
	raw := []byte("%PDF-1.7 fake body")
	result, err := Normalize("paper.pdf", "application/pdf", raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Text != "" {
		t.Error("Expected no extracted text for PDF")
	}
	if result.Attachment == nil {
		t.Fatal("Expected an attachment for PDF")
	}
	if result.Attachment.Name != "paper.pdf" || result.Attachment.MIMEType != "application/pdf" {
		t.Errorf("Unexpected attachment metadata: %+v", result.Attachment)
	}
	decoded, err := base64.StdEncoding.DecodeString(result.Attachment.Data)
	if err != nil {
		t.Fatalf("Attachment data is not valid base64: %v", err)
	}
	if string(decoded) != string(raw) {
		t.Error("Attachment payload does not round-trip")
	}
}

func TestNormalizeUnsupportedType(t *testing.T) {
	for _, mime := range []string{"image/png", "application/zip", "video/mp4", ""} {
		_, err := Normalize("file.bin", mime, []byte{1, 2, 3})
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Expected ErrUnsupportedType for %q, got %v", mime, err)
		}
	}
}

func TestNormalizeCorruptDocx(t *testing.T) {
	_, err := Normalize("broken.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		[]byte("this is not a zip archive"))
	if err == nil {
		t.Fatal("Expected an error for corrupt DOCX")
	}
	if !strings.Contains(err.Error(), "unable to extract document content") {
		t.Errorf("Expected recoverable extraction error, got %v", err)
	}
}
