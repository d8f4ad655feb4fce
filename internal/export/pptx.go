package export

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/slidecraft/slidecraft/internal/models"
)

// BuildPPTX assembles the slideshow package: one 16:9 slide per rendered
// slide with the image covering the full canvas and the speaker notes
// attached as presenter notes. Building is separated from serialization so
// the slide layout is testable on its own.
func BuildPPTX(p *models.Presentation) (*ppt.Presentation, error) {
	pres := ppt.New()
	props := pres.GetDocumentProperties()
	props.Title = p.Topic
	props.Creator = "slidecraft"

	for i, s := range p.Slides {
		slide := pres.GetActiveSlide()
		if i > 0 {
			slide = pres.CreateSlide()
		}

		image, err := decodeDataURL(s.ImageData)
		if err != nil {
			return nil, fmt.Errorf("slide %s: %w", s.ID, err)
		}

		shape := slide.CreateDrawingShape()
		shape.SetImageData(image, "image/png")
		shape.SetOffsetX(0).SetOffsetY(0)
		shape.SetWidth(slideWidthEMU).SetHeight(slideHeightEMU)

		if s.SpeakerNotes != "" {
			slide.SetNotes(s.SpeakerNotes)
		}
	}

	return pres, nil
}

// PPTX serializes the slideshow-package export and returns its bytes plus a
// download filename derived from the sanitized topic.
func PPTX(p *models.Presentation) ([]byte, string, error) {
	pres, err := BuildPPTX(p)
	if err != nil {
		return nil, "", err
	}

	writer, err := ppt.NewWriter(pres, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create slideshow writer: %w", err)
	}

	var buf bytes.Buffer
	if err := writer.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write slideshow package: %w", err)
	}
	return buf.Bytes(), sanitizeFilename(p.Topic) + ".pptx", nil
}
