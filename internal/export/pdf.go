package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/slidecraft/slidecraft/internal/models"
)

// BuildPDF lays out one fixed-size 1280x720pt page per slide, in deck
// order, with the slide image filling the page. Building is separated from
// serialization so the page layout is testable on its own.
func BuildPDF(p *models.Presentation) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageWidthPt, Ht: pageHeightPt},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	for i, slide := range p.Slides {
		image, err := decodeDataURL(slide.ImageData)
		if err != nil {
			return nil, fmt.Errorf("slide %s: %w", slide.ID, err)
		}

		pdf.AddPage()
		name := fmt.Sprintf("slide-image-%d", i)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(image))
		pdf.ImageOptions(name, 0, 0, pageWidthPt, pageHeightPt, false, opts, 0, "")
	}

	if pdf.Err() {
		return nil, fmt.Errorf("failed to build PDF: %v", pdf.Error())
	}
	return pdf, nil
}

// PDF serializes the paginated-document export and returns its bytes plus a
// download filename derived from the sanitized topic.
func PDF(p *models.Presentation) ([]byte, string, error) {
	pdf, err := BuildPDF(p)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), sanitizeFilename(p.Topic) + ".pdf", nil
}
