// Package outline turns source material into a structured slide outline via
// the text-generation service, harvesting grounding citations along the way.
package outline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/slidecraft/slidecraft/internal/gemini"
	"github.com/slidecraft/slidecraft/internal/models"
)

// TextGenerator is the text-generation service the synthesizer calls.
type TextGenerator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error)
}

// Synthesizer produces slide outlines from source input.
type Synthesizer struct {
	client TextGenerator

	// Threshold is the article-mode text length cutoff; <= 0 means the
	// default. Whether this should be per-request is an open product
	// question, so it stays a field rather than a constant.
	Threshold int
	// MaxArticleChars caps verbatim source material; <= 0 means the default.
	MaxArticleChars int
}

// NewSynthesizer returns a synthesizer with default policy settings.
func NewSynthesizer(client TextGenerator) *Synthesizer {
	return &Synthesizer{client: client}
}

// Result is a parsed outline plus any grounding citations.
type Result struct {
	Slides    []models.SlideOutline
	Citations []models.Citation
}

// Synthesize requests an outline for the given input and parameters. A
// service failure is returned as an error; unparseable model output is not —
// it degrades to a single fallback entry so the pipeline can proceed.
func (s *Synthesizer) Synthesize(ctx context.Context, input models.SourceInput, params models.GenerationParams) (*Result, error) {
	article := IsArticleMode(input.Text, input.Attachment != nil, s.Threshold)

	req := gemini.GenerateRequest{
		Prompt:       buildPrompt(input, params, article, s.MaxArticleChars),
		EnableSearch: !article,
	}
	if input.Attachment != nil {
		req.Attachment = &gemini.Blob{
			MIMEType: input.Attachment.MIMEType,
			Data:     input.Attachment.Data,
		}
	}

	res, err := s.client.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("outline synthesis: %w", err)
	}

	slides := parseOutline(res.Text)
	slog.Info("Synthesized outline", "slides", len(slides), "article_mode", article, "sources", len(res.Sources))

	return &Result{
		Slides:    slides,
		Citations: DedupeCitations(citationsFromSources(res.Sources)),
	}, nil
}

// parseOutline extracts and decodes the outline array from raw model output.
// Anything unparseable degrades to the single fallback entry.
func parseOutline(text string) []models.SlideOutline {
	raw, err := ExtractJSONArray(text)
	if err != nil {
		slog.Warn("No outline array in model output, using fallback entry", "error", err)
		return fallbackOutline()
	}

	var slides []models.SlideOutline
	if err := json.Unmarshal([]byte(raw), &slides); err != nil {
		slog.Warn("Failed to parse outline array, using fallback entry", "error", err)
		return fallbackOutline()
	}
	if len(slides) == 0 {
		slog.Warn("Model returned an empty outline array, using fallback entry")
		return fallbackOutline()
	}
	return slides
}

func fallbackOutline() []models.SlideOutline {
	return []models.SlideOutline{{
		Title:             "Generation Failed",
		Content:           "Could not parse the outline structure. Please try again.",
		VisualDescription: "A simple, clean slide with an abstract geometric background.",
	}}
}

func citationsFromSources(sources []gemini.WebSource) []models.Citation {
	citations := make([]models.Citation, 0, len(sources))
	for _, src := range sources {
		citations = append(citations, models.Citation{Title: src.Title, URL: src.URI})
	}
	return citations
}

// DedupeCitations collapses citations sharing a URL. The first occurrence
// keeps its position; the last-seen payload for a URL wins.
func DedupeCitations(in []models.Citation) []models.Citation {
	if len(in) == 0 {
		return nil
	}

	order := make([]string, 0, len(in))
	byURL := make(map[string]models.Citation, len(in))
	for _, c := range in {
		if c.URL == "" {
			continue
		}
		if _, seen := byURL[c.URL]; !seen {
			order = append(order, c.URL)
		}
		byURL[c.URL] = c
	}

	out := make([]models.Citation, 0, len(order))
	for _, url := range order {
		out = append(out, byURL[url])
	}
	return out
}
