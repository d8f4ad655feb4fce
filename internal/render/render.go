// Package render turns one outline entry into one rendered slide image via
// the image-generation service.
package render

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/slidecraft/slidecraft/internal/models"
)

// ImageGenerator is the image-generation service a renderer calls.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// Renderer renders outline entries into slide images.
type Renderer struct {
	client ImageGenerator
}

// NewRenderer returns a renderer backed by the given service.
func NewRenderer(client ImageGenerator) *Renderer {
	return &Renderer{client: client}
}

// Render produces the slide image for one outline entry as a PNG data URL.
// A response without an image payload is an error; the caller decides what
// that does to the rest of the batch.
func (r *Renderer) Render(ctx context.Context, entry models.SlideOutline) (string, error) {
	image, err := r.client.GenerateImage(ctx, buildPrompt(entry))
	if err != nil {
		return "", fmt.Errorf("render %q: %w", entry.Title, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(image), nil
}

// buildPrompt embeds the slide's literal text in the image request. The
// typography constraints matter: image models happily produce garbled
// lettering unless told not to.
func buildPrompt(entry models.SlideOutline) string {
	return fmt.Sprintf(`Render a single presentation slide as one 16:9 image.

Headline: %s

Body text:
%s

Layout and style instructions: %s

The headline and body text must appear in the image exactly as written, set in large, legible, professional typography. Do not render garbled, misspelled, or invented text.`,
		entry.Title, entry.Content, entry.VisualDescription)
}
