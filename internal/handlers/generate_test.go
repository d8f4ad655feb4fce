package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/slidecraft/slidecraft/internal/deck"
	"github.com/slidecraft/slidecraft/internal/models"
)

// fakeGenerator records each input it sees and replays scripted outcomes in
// order.
type fakeGenerator struct {
	inputs  []models.SourceInput
	outcome []error
}

func (f *fakeGenerator) Generate(_ context.Context, input models.SourceInput, _ models.GenerationParams) (*models.Presentation, error) {
	f.inputs = append(f.inputs, input)
	if len(f.outcome) > 0 {
		err := f.outcome[0]
		f.outcome = f.outcome[1:]
		if err != nil {
			return nil, err
		}
	}
	return &models.Presentation{
		ID:        "p-1",
		Topic:     "Test Deck",
		CreatedAt: time.Now(),
	}, nil
}

type openGate struct{}

func (openGate) HasCredential() bool { return true }

func postGenerate(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)
	return w
}

func TestHandleGenerateKeepsAttachmentOnRejection(t *testing.T) {
	gen := &fakeGenerator{outcome: []error{deck.ErrGenerationInProgress, nil}}
	h := New(gen, openGate{})

	doc := &models.AttachedDocument{Name: "paper.pdf", MIMEType: "application/pdf", Data: "QUJD"}
	h.setPending(doc)

	// First attempt is rejected while another run is in flight.
	if w := postGenerate(t, h, `{"text":"ocean currents"}`); w.Code != http.StatusConflict {
		t.Fatalf("Expected 409 for rejected submission, got %d", w.Code)
	}
	if h.peekPending() != doc {
		t.Fatal("Rejected submission must leave the pending attachment in place")
	}

	// The retry carries the attachment; success consumes it.
	if w := postGenerate(t, h, `{"text":"ocean currents"}`); w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for retry, got %d", w.Code)
	}
	if len(gen.inputs) != 2 {
		t.Fatalf("Expected 2 generation attempts, got %d", len(gen.inputs))
	}
	if gen.inputs[0].Attachment != doc || gen.inputs[1].Attachment != doc {
		t.Error("Both attempts must carry the pending attachment")
	}
	if h.peekPending() != nil {
		t.Error("Successful generation must consume the pending attachment")
	}
}

func TestHandleGenerateKeepsAttachmentOnPipelineFailure(t *testing.T) {
	for _, tt := range []struct {
		name string
		err  error
		code int
	}{
		{"no credential", deck.ErrNoCredential, http.StatusPaymentRequired},
		{"render failure", context.DeadlineExceeded, http.StatusBadGateway},
	} {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{outcome: []error{tt.err}}
			h := New(gen, openGate{})

			doc := &models.AttachedDocument{Name: "paper.pdf", MIMEType: "application/pdf", Data: "QUJD"}
			h.setPending(doc)

			if w := postGenerate(t, h, `{"text":"topic"}`); w.Code != tt.code {
				t.Fatalf("Expected %d, got %d", tt.code, w.Code)
			}
			if h.peekPending() != doc {
				t.Error("Failed generation must leave the pending attachment in place")
			}
		})
	}
}

func TestHandleGenerateErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{deck.ErrNoInput, http.StatusBadRequest},
		{deck.ErrGenerationInProgress, http.StatusConflict},
		{deck.ErrNoCredential, http.StatusPaymentRequired},
		{context.DeadlineExceeded, http.StatusBadGateway},
	}
	for _, tt := range tests {
		gen := &fakeGenerator{outcome: []error{tt.err}}
		h := New(gen, openGate{})
		if w := postGenerate(t, h, `{"text":"topic"}`); w.Code != tt.code {
			t.Errorf("Expected %d for %v, got %d", tt.code, tt.err, w.Code)
		}
	}
}
