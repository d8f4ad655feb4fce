package models

import (
	"strings"
	"time"
)

// AttachedDocument is a binary source document carried through to the text
// model as an inline attachment instead of extracted text.
type AttachedDocument struct {
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64-encoded payload
}

// SourceInput is the material a presentation is generated from: free-form
// text, an attached document, or both.
type SourceInput struct {
	Text       string            `json:"text"`
	Attachment *AttachedDocument `json:"attachment,omitempty"`
}

// IsEmpty reports whether there is nothing to generate from.
func (s SourceInput) IsEmpty() bool {
	return strings.TrimSpace(s.Text) == "" && s.Attachment == nil
}

// Audience complexity tiers.
const (
	ComplexityGeneral      = "general"
	ComplexityProfessional = "professional"
	ComplexityAcademic     = "academic"
	ComplexityExecutive    = "executive"
)

// Slide count bounds for a single deck.
const (
	MinSlideCount = 3
	MaxSlideCount = 12
)

// GenerationParams controls how a deck is generated.
type GenerationParams struct {
	Complexity string `json:"complexity"`
	Style      string `json:"style"`
	Language   string `json:"language"`
	SlideCount int    `json:"slide_count"`
}

// Normalized returns a copy with defaults applied and the slide count
// clamped to the supported range.
func (p GenerationParams) Normalized() GenerationParams {
	if p.Complexity == "" {
		p.Complexity = ComplexityGeneral
	}
	if p.Language == "" {
		p.Language = "English"
	}
	if p.SlideCount < MinSlideCount {
		p.SlideCount = MinSlideCount
	}
	if p.SlideCount > MaxSlideCount {
		p.SlideCount = MaxSlideCount
	}
	return p
}

// SlideOutline is one slide's textual specification prior to rendering.
// The JSON tags match the keys the model is instructed to emit.
type SlideOutline struct {
	Title             string `json:"title"`
	Content           string `json:"content"`
	VisualDescription string `json:"visualDescription"`
}

// Citation is a grounding source reference returned by a search-augmented
// generation call.
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// RenderedSlide is one fully rendered slide. Immutable once produced.
type RenderedSlide struct {
	ID           string `json:"id"`
	ImageData    string `json:"image_data"` // data URL with embedded PNG
	Title        string `json:"title"`
	SpeakerNotes string `json:"speaker_notes"`
}

// Presentation is the assembled deck. It is only constructed after every
// slide render has succeeded; a partially rendered deck never leaves the
// assembler.
type Presentation struct {
	ID         string          `json:"id"`
	Topic      string          `json:"topic"`
	CreatedAt  time.Time       `json:"created_at"`
	Slides     []RenderedSlide `json:"slides"`
	Complexity string          `json:"complexity"`
	Style      string          `json:"style"`
	Citations  []Citation      `json:"citations,omitempty"`
}
