// Package deck orchestrates a generation run: outline synthesis, concurrent
// slide rendering, and assembly of the results into a Presentation.
package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/slidecraft/slidecraft/internal/models"
	"github.com/slidecraft/slidecraft/internal/outline"
)

var (
	// ErrGenerationInProgress rejects a submission while another run is active.
	ErrGenerationInProgress = errors.New("a generation run is already in progress")
	// ErrNoCredential rejects a run before any service call when the
	// credential gate reports no billing-enabled credential.
	ErrNoCredential = errors.New("no API credential selected")
	// ErrNoInput rejects a run with neither text nor an attached document.
	ErrNoInput = errors.New("no source text or attached document provided")
)

// OutlineSynthesizer produces the slide outline for a run.
type OutlineSynthesizer interface {
	Synthesize(ctx context.Context, input models.SourceInput, params models.GenerationParams) (*outline.Result, error)
}

// SlideRenderer renders one outline entry into an image data URL.
type SlideRenderer interface {
	Render(ctx context.Context, entry models.SlideOutline) (string, error)
}

// CredentialGate reports whether a billing-enabled API credential has been
// selected. Selecting one is owned by the caller's UI, not the pipeline.
type CredentialGate interface {
	HasCredential() bool
}

// Service runs the generation pipeline. At most one run is active at a
// time; concurrent submissions are rejected, not queued.
type Service struct {
	outliner OutlineSynthesizer
	renderer SlideRenderer
	gate     CredentialGate

	mu   sync.Mutex
	busy bool
}

// NewService wires a deck service from its collaborators.
func NewService(outliner OutlineSynthesizer, renderer SlideRenderer, gate CredentialGate) *Service {
	return &Service{
		outliner: outliner,
		renderer: renderer,
		gate:     gate,
	}
}

// Generate runs the full pipeline and returns the assembled Presentation.
// Rendering is all-or-nothing: a single failed slide fails the run and no
// partial deck is returned.
func (s *Service) Generate(ctx context.Context, input models.SourceInput, params models.GenerationParams) (*models.Presentation, error) {
	if !s.tryAcquire() {
		return nil, ErrGenerationInProgress
	}
	defer s.release()

	if s.gate != nil && !s.gate.HasCredential() {
		return nil, ErrNoCredential
	}
	if input.IsEmpty() {
		return nil, ErrNoInput
	}
	params = params.Normalized()

	started := time.Now()
	out, err := s.outliner.Synthesize(ctx, input, params)
	if err != nil {
		return nil, err
	}

	slides, err := s.renderAll(ctx, out.Slides)
	if err != nil {
		return nil, err
	}

	presentation := &models.Presentation{
		ID:         uuid.NewString(),
		Topic:      topicOf(out.Slides),
		CreatedAt:  time.Now(),
		Slides:     slides,
		Complexity: params.Complexity,
		Style:      params.Style,
		Citations:  out.Citations,
	}

	slog.Info("Assembled presentation",
		"id", presentation.ID,
		"topic", presentation.Topic,
		"slides", len(presentation.Slides),
		"citations", len(presentation.Citations),
		"duration", time.Since(started).Round(time.Millisecond))

	return presentation, nil
}

// renderAll fans out one render per outline entry and joins all-or-nothing.
// Results land in an index-addressed slice, so deck order always matches
// outline order no matter which renders complete first. The errgroup
// context cancels in-flight siblings once any render fails.
func (s *Service) renderAll(ctx context.Context, entries []models.SlideOutline) ([]models.RenderedSlide, error) {
	slides := make([]models.RenderedSlide, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		g.Go(func() error {
			image, err := s.renderer.Render(ctx, entry)
			if err != nil {
				return err
			}
			slides[i] = models.RenderedSlide{
				ID:           fmt.Sprintf("slide-%d", i),
				ImageData:    image,
				Title:        entry.Title,
				SpeakerNotes: entry.Content,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("deck assembly aborted: %w", err)
	}
	return slides, nil
}

// topicOf derives the deck topic from the first outline entry.
func topicOf(entries []models.SlideOutline) string {
	if len(entries) > 0 && strings.TrimSpace(entries[0].Title) != "" {
		return entries[0].Title
	}
	return "Untitled Presentation"
}

func (s *Service) tryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Service) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
