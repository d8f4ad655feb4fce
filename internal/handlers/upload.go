package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/slidecraft/slidecraft/internal/extract"
)

const maxUploadBytes = 20 * 1024 * 1024

// HandleUpload normalizes one uploaded source file. Text-bearing files come
// back as an extracted fragment for the client to append to its input;
// binary documents are parked server-side as the pending attachment for the
// next generation request. A failed upload changes nothing.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		h.handleFileUpload(w, r)
	case "DELETE":
		h.setPending(nil)
		h.writeJSON(w, map[string]any{"message": "Attachment cleared"})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleFileUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(fileData) >= maxUploadBytes {
		h.writeError(w, "File too large (max 20MB)", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	result, err := extract.Normalize(header.Filename, mimeType, fileData)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, extract.ErrUnsupportedType) {
			status = http.StatusBadRequest
		}
		h.writeError(w, err.Error(), status)
		return
	}

	if result.Attachment != nil {
		h.setPending(result.Attachment)
		h.writeJSON(w, map[string]any{
			"message":  "Document attached",
			"attached": result.Attachment.Name,
		})
		return
	}

	h.writeJSON(w, map[string]any{
		"message": "Text extracted",
		"text":    result.Text,
	})
}
