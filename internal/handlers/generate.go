package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/slidecraft/slidecraft/internal/models"
)

type generateRequest struct {
	Text string `json:"text"`
	models.GenerationParams
}

// HandleGenerate runs one generation attempt from the posted text plus any
// pending attachment, stores the assembled presentation, and returns it.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	input := models.SourceInput{
		Text:       req.Text,
		Attachment: h.peekPending(),
	}

	presentation, err := h.generator.Generate(r.Context(), input, req.GenerationParams)
	if err != nil {
		h.writeError(w, "Generation failed: "+err.Error(), generationStatus(err))
		return
	}

	h.setPending(nil)
	h.store.Set(presentation.ID, presentation)
	slog.Info("Stored presentation", "id", presentation.ID, "slides", len(presentation.Slides))
	h.writeJSON(w, presentation)
}

// HandleCredential reports whether a billing-enabled credential is
// selected. Selecting one is owned by the chrome.
func (h *Handler) HandleCredential(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, map[string]any{
		"has_credential": h.gate != nil && h.gate.HasCredential(),
	})
}
