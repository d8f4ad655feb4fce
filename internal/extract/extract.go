// Package extract normalizes uploaded source files into pipeline input:
// plain text is decoded, word-processing documents are converted to text,
// and PDFs are passed through as binary attachments for the model to
// consume directly.
package extract

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	docx "github.com/fumiama/go-docx"

	"github.com/slidecraft/slidecraft/internal/models"
)

const (
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePDF  = "application/pdf"
)

// ErrUnsupportedType indicates an uploaded file's MIME type is not handled.
var ErrUnsupportedType = errors.New("unsupported file type")

// Result is the outcome of normalizing one uploaded file. Exactly one of
// Text or Attachment is set.
type Result struct {
	Text       string
	Attachment *models.AttachedDocument
}

// Normalize converts one uploaded file into pipeline input based on its
// declared MIME type. Unsupported types and failed conversions return an
// error without producing a partial result.
func Normalize(name, mimeType string, data []byte) (*Result, error) {
	switch {
	case strings.HasPrefix(mimeType, "text/"):
		return &Result{Text: withProvenance(name, string(data))}, nil

	case mimeType == mimeDocx:
		text, err := extractDocx(data)
		if err != nil {
			return nil, fmt.Errorf("unable to extract document content: %w", err)
		}
		slog.Info("Extracted document text", "name", name, "chars", len(text))
		return &Result{Text: withProvenance(name, text)}, nil

	case mimeType == mimePDF:
		return &Result{Attachment: &models.AttachedDocument{
			Name:     name,
			MIMEType: mimePDF,
			Data:     base64.StdEncoding.EncodeToString(data),
		}}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
}

// withProvenance prefixes an extracted fragment with the file it came from,
// so the model can tell multiple sources apart.
func withProvenance(name, text string) string {
	return fmt.Sprintf("[content from %s]:\n%s", name, text)
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch block := item.(type) {
		case *docx.Paragraph:
			sb.WriteString(block.String())
			sb.WriteString("\n")
		case *docx.Table:
			sb.WriteString(block.String())
			sb.WriteString("\n")
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
