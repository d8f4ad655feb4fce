package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/slidecraft/slidecraft/internal/export"
	"github.com/slidecraft/slidecraft/internal/models"
)

// HandlePresentations lists all generated presentations.
func (h *Handler) HandlePresentations(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	all := h.store.GetAll()
	list := make([]*models.Presentation, 0, len(all))
	for _, p := range all {
		list = append(list, p)
	}
	h.writeJSON(w, list)
}

// HandlePresentationDetail serves a single presentation and its export
// downloads:
//
//	GET /api/presentations/{id}
//	GET /api/presentations/{id}/pdf
//	GET /api/presentations/{id}/pptx
//	GET /api/presentations/{id}/slides/{n}/png
func (h *Handler) HandlePresentationDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/presentations/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	p, exists := h.store.Get(parts[0])
	if !exists {
		h.writeError(w, "Presentation not found", http.StatusNotFound)
		return
	}

	switch {
	case len(parts) == 1:
		h.writeJSON(w, p)
	case len(parts) == 2 && parts[1] == "pdf":
		data, name, err := export.PDF(p)
		if err != nil {
			h.writeError(w, "PDF export failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		serveDownload(w, data, name, "application/pdf")
	case len(parts) == 2 && parts[1] == "pptx":
		data, name, err := export.PPTX(p)
		if err != nil {
			h.writeError(w, "Slideshow export failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		serveDownload(w, data, name, "application/vnd.openxmlformats-officedocument.presentationml.presentation")
	case len(parts) == 4 && parts[1] == "slides" && parts[3] == "png":
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			h.writeError(w, "Invalid slide index: "+parts[2], http.StatusBadRequest)
			return
		}
		data, name, err := export.SlidePNG(p, index)
		if err != nil {
			h.writeError(w, "Slide download failed: "+err.Error(), http.StatusBadRequest)
			return
		}
		serveDownload(w, data, name, "image/png")
	default:
		h.writeError(w, "Not found", http.StatusNotFound)
	}
}

func serveDownload(w http.ResponseWriter, data []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
