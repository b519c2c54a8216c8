package weather

import "context"

// GenerateRequest is one prompt sent to a generative model.
type GenerateRequest struct {
	Model  string
	Prompt string
	// SearchGrounding enables the provider's web search tool for this request.
	SearchGrounding bool
}

// WebSource is the web part of a grounding chunk. Either field may be empty.
type WebSource struct {
	URI   string
	Title string
}

// GroundingChunk is one citation returned with a grounded answer.
type GroundingChunk struct {
	Web *WebSource
}

// Generation is the raw result of a model call.
type Generation struct {
	Text   string
	Chunks []GroundingChunk
}

// Model abstracts a generative-language backend (e.g. Gemini).
type Model interface {
	Name() string
	Generate(ctx context.Context, req GenerateRequest) (Generation, error)
}

// NormalizeSources keeps the chunks that carry both a web uri and a title,
// in order. The result is never nil.
func NormalizeSources(chunks []GroundingChunk) []Source {
	sources := make([]Source, 0, len(chunks))
	for _, c := range chunks {
		if c.Web == nil {
			continue
		}
		if c.Web.URI == "" || c.Web.Title == "" {
			continue
		}
		sources = append(sources, Source{URI: c.Web.URI, Title: c.Web.Title})
	}
	return sources
}
