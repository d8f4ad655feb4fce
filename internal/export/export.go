// Package export serializes a Presentation into downloadable artifacts: a
// single slide image, a paginated PDF, or a PowerPoint package. Exports
// never mutate the Presentation.
package export

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/slidecraft/slidecraft/internal/models"
)

// Both document formats use a fixed 16:9 canvas.
const (
	pageWidthPt  = 1280.0
	pageHeightPt = 720.0

	emuPerInch     = 914400
	slideWidthEMU  = int64(10.0 * emuPerInch)
	slideHeightEMU = int64(5.625 * emuPerInch)
)

// SlidePNG returns one slide's raw PNG bytes and a download filename built
// from the truncated topic and the slide identifier. The same slide always
// yields byte-identical output.
func SlidePNG(p *models.Presentation, index int) ([]byte, string, error) {
	if index < 0 || index >= len(p.Slides) {
		return nil, "", fmt.Errorf("slide index %d out of range [0,%d)", index, len(p.Slides))
	}

	slide := p.Slides[index]
	data, err := decodeDataURL(slide.ImageData)
	if err != nil {
		return nil, "", fmt.Errorf("slide %s: %w", slide.ID, err)
	}

	name := fmt.Sprintf("%s-%s.png", truncate(sanitizeFilename(p.Topic), 20), slide.ID)
	return data, name, nil
}

// decodeDataURL strips the data-URL header and decodes the base64 payload.
func decodeDataURL(dataURL string) ([]byte, error) {
	_, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return nil, fmt.Errorf("malformed image payload: not a data URL")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("malformed image payload: %w", err)
	}
	return data, nil
}

// sanitizeFilename replaces anything outside [A-Za-z0-9_-] so the topic is
// safe as a download filename on any platform.
func sanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "presentation"
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
