package gemini

// Wire types for the v1beta generateContent endpoint. Only the fields the
// pipeline consumes are modeled.

type generateContentRequest struct {
	Contents         []Content         `json:"contents"`
	Tools            []Tool            `json:"tools,omitempty"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content is one turn of model input or output.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a single piece of content: text or an inline binary blob.
type Part struct {
	Text       string `json:"text,omitempty"`
	InlineData *Blob  `json:"inlineData,omitempty"`
}

// Blob is base64-encoded binary data with its MIME type.
type Blob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Tool enables a model capability for the call.
type Tool struct {
	GoogleSearch *GoogleSearch `json:"google_search,omitempty"`
}

// GoogleSearch is the search-grounding tool. It has no options.
type GoogleSearch struct{}

// GenerationConfig tunes the response; the image model needs the IMAGE
// response modality requested explicitly.
type GenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type generateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one model response alternative.
type Candidate struct {
	Content           *Content           `json:"content"`
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
}

// GroundingMetadata carries the sources a search-grounded response drew on.
type GroundingMetadata struct {
	GroundingChunks []GroundingChunk `json:"groundingChunks"`
}

// GroundingChunk is one grounding reference.
type GroundingChunk struct {
	Web *WebSource `json:"web,omitempty"`
}

// WebSource is a web page a grounded response cited.
type WebSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}
