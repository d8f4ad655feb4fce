// Package gemini is a typed REST client for the Gemini generateContent API,
// covering the two calls the pipeline makes: outline synthesis (text, with
// optional search grounding and document attachment) and slide rendering
// (image output).
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTextModel generates slide outlines.
	DefaultTextModel = "gemini-2.5-flash"
	// DefaultImageModel renders slide images.
	DefaultImageModel = "gemini-2.5-flash-image-preview"
)

// Client calls the Gemini API over HTTP.
type Client struct {
	apiKey     string
	baseURL    string
	textModel  string
	imageModel string
	httpClient *http.Client
}

// NewClient returns a client using the given API key and model names.
// Empty model names fall back to the defaults.
func NewClient(apiKey, textModel, imageModel string) *Client {
	if textModel == "" {
		textModel = DefaultTextModel
	}
	if imageModel == "" {
		imageModel = DefaultImageModel
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		textModel:  textModel,
		imageModel: imageModel,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// HasCredential reports whether an API key has been selected.
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

// GenerateRequest is one outline-synthesis call.
type GenerateRequest struct {
	Prompt       string
	Attachment   *Blob // optional inline document the model consumes directly
	EnableSearch bool  // enable the search-grounding tool
}

// GenerateResult is the text and any grounding sources a call produced.
type GenerateResult struct {
	Text    string
	Sources []WebSource
}

// GenerateContent sends a text-generation request and returns the response
// text plus any grounding sources.
func (c *Client) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	parts := []Part{{Text: req.Prompt}}
	if req.Attachment != nil {
		parts = append(parts, Part{InlineData: req.Attachment})
	}

	body := generateContentRequest{
		Contents: []Content{{Parts: parts}},
	}
	if req.EnableSearch {
		body.Tools = []Tool{{GoogleSearch: &GoogleSearch{}}}
	}

	resp, err := c.generateContent(ctx, c.textModel, body)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Text:    textFromCandidates(resp.Candidates),
		Sources: sourcesFromCandidates(resp.Candidates),
	}, nil
}

// GenerateImage asks the image model for a single rendered image and returns
// its raw bytes. A response with no image part fails with ErrNoImage.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	body := generateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		},
	}

	resp, err := c.generateContent(ctx, c.imageModel, body)
	if err != nil {
		return nil, err
	}

	blob := imageFromCandidates(resp.Candidates)
	if blob == nil {
		return nil, ErrNoImage
	}

	data, err := base64.StdEncoding.DecodeString(blob.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return data, nil
}

func (c *Client) generateContent(ctx context.Context, model string, body generateContentRequest) (*generateContentResponse, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode Gemini response: %w", err)
	}
	return &out, nil
}

// textFromCandidates concatenates the text parts of the first candidate.
func textFromCandidates(candidates []Candidate) string {
	if len(candidates) == 0 || candidates[0].Content == nil {
		return ""
	}
	var buf bytes.Buffer
	for _, part := range candidates[0].Content.Parts {
		buf.WriteString(part.Text)
	}
	return buf.String()
}

// sourcesFromCandidates collects web grounding sources that carry both a URI
// and a title. References without either are useless as citations.
func sourcesFromCandidates(candidates []Candidate) []WebSource {
	var sources []WebSource
	for _, cand := range candidates {
		if cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" || chunk.Web.Title == "" {
				continue
			}
			sources = append(sources, *chunk.Web)
		}
	}
	return sources
}

// imageFromCandidates returns the first inline image blob in the response.
func imageFromCandidates(candidates []Candidate) *Blob {
	for _, cand := range candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return part.InlineData
			}
		}
	}
	return nil
}
