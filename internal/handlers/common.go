// Package handlers is the HTTP surface the presentation chrome talks to.
// It owns upload/session state and error-to-status mapping; all real work
// happens in the pipeline packages.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/slidecraft/slidecraft/internal/deck"
	"github.com/slidecraft/slidecraft/internal/gemini"
	"github.com/slidecraft/slidecraft/internal/models"
	"github.com/slidecraft/slidecraft/internal/storage"
)

// Generator runs one generation attempt. Satisfied by *deck.Service.
type Generator interface {
	Generate(ctx context.Context, input models.SourceInput, params models.GenerationParams) (*models.Presentation, error)
}

type Handler struct {
	store     *storage.PresentationStore
	generator Generator
	gate      deck.CredentialGate

	// pending is the attached document from the most recent binary upload,
	// consumed by the next successful generation. Text uploads are returned
	// to the client instead, which appends them to its input field.
	mu      sync.Mutex
	pending *models.AttachedDocument
}

func New(generator Generator, gate deck.CredentialGate) *Handler {
	return &Handler{
		store:     storage.New(),
		generator: generator,
		gate:      gate,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// generationStatus maps pipeline errors onto response codes. Credential
// failures get their own status so the chrome prompts for re-authentication
// instead of suggesting a retry with different input.
func generationStatus(err error) int {
	switch {
	case errors.Is(err, deck.ErrNoInput):
		return http.StatusBadRequest
	case errors.Is(err, deck.ErrGenerationInProgress):
		return http.StatusConflict
	case errors.Is(err, deck.ErrNoCredential):
		return http.StatusPaymentRequired
	case gemini.IsCredentialError(err):
		return http.StatusPaymentRequired
	default:
		return http.StatusBadGateway
	}
}

// peekPending returns the pending attachment without consuming it. A
// rejected generation attempt must leave it in place for the retry; the
// handler clears it only after a run succeeds.
func (h *Handler) peekPending() *models.AttachedDocument {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending
}

func (h *Handler) setPending(doc *models.AttachedDocument) {
	h.mu.Lock()
	h.pending = doc
	h.mu.Unlock()
}
