package outline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/slidecraft/slidecraft/internal/models"
)

// Visual style tags a caller can request.
const (
	StylePhotorealistic = "photorealistic"
	StyleMinimalist     = "minimalist"
	StyleIllustrated    = "illustrated"
	StyleCorporate      = "corporate"
	StyleCreative       = "creative"
)

// DefaultArticleThreshold is the free-text length (in runes) above which
// input is treated as source material to analyze rather than a topic to
// research.
const DefaultArticleThreshold = 250

// DefaultMaxArticleChars caps how much source material is passed to the
// model verbatim in article mode.
const DefaultMaxArticleChars = 20000

var styleDirectives = map[string]string{
	StylePhotorealistic: "photorealistic, high-resolution photography with natural lighting and cinematic depth of field",
	StyleMinimalist:     "minimalist flat design with generous white space, a restrained two-tone palette, and simple geometric shapes",
	StyleIllustrated:    "hand-drawn illustration style with warm colors, soft textures, and organic linework",
	StyleCorporate:      "polished corporate style with a blue and gray palette, crisp iconography, and clean chart-like graphics",
	StyleCreative:       "bold creative collage style with vibrant gradients, playful shapes, and expressive abstract composition",
}

const defaultStyleDirective = "clean modern presentation design with a clear visual hierarchy"

// StyleDirective maps a style tag to the rendering directive embedded in
// prompts. Unrecognized tags get the default directive, so the lookup is
// total.
func StyleDirective(tag string) string {
	if directive, ok := styleDirectives[tag]; ok {
		return directive
	}
	return defaultStyleDirective
}

// IsArticleMode decides between "article analysis" (content passed verbatim,
// no search tool) and "topic research" (search grounding enabled). An
// attached document always means article mode; otherwise anything longer
// than the threshold is treated as pasted material rather than a topic.
// A threshold <= 0 selects the default.
func IsArticleMode(text string, hasAttachment bool, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultArticleThreshold
	}
	return hasAttachment || utf8.RuneCountInString(text) > threshold
}

// buildPrompt assembles the outline-synthesis instruction payload.
func buildPrompt(input models.SourceInput, params models.GenerationParams, article bool, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxArticleChars
	}

	var b strings.Builder
	b.WriteString("You are an expert presentation designer.\n\n")

	if article {
		text := strings.TrimSpace(input.Text)
		if runes := []rune(text); len(runes) > maxChars {
			text = string(runes[:maxChars])
		}
		switch {
		case text == "" && input.Attachment != nil:
			b.WriteString("Analyze the attached document and distill it into a presentation outline.\n\n")
		case input.Attachment != nil:
			b.WriteString("Analyze the attached document together with the following source material and distill them into a presentation outline.\n\nSOURCE MATERIAL:\n")
			b.WriteString(text)
			b.WriteString("\n\n")
		default:
			b.WriteString("Analyze the following source material and distill it into a presentation outline.\n\nSOURCE MATERIAL:\n")
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	} else {
		fmt.Fprintf(&b, "Research the topic %q and build a presentation outline from what you find.\n\n", strings.TrimSpace(input.Text))
	}

	fmt.Fprintf(&b, "Create exactly %d slides for a %s audience.\n", params.SlideCount, params.Complexity)
	b.WriteString("Slide 1 must be a title slide introducing the subject. The final slide must be a conclusion or summary.\n")
	fmt.Fprintf(&b, "Write every title and all content in %s.\n", params.Language)
	fmt.Fprintf(&b, "Every visualDescription must follow this aesthetic: %s.\n\n", StyleDirective(params.Style))
	b.WriteString(`Respond with ONLY a JSON array, one object per slide, in this exact shape:
[{"title": "slide headline", "content": "2-4 short bullet points separated by newlines", "visualDescription": "detailed instructions for an image generator rendering this slide"}]`)

	return b.String()
}
