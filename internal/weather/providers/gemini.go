package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// DefaultGeminiBaseURL is the public Generative Language API endpoint.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiProvider implements the weather.Model interface on the Gemini API.
type GeminiProvider struct {
	name    string
	config  genai.ClientConfig
	circuit *gobreaker.CircuitBreaker

	once    sync.Once
	client  *genai.Client
	initErr error
}

// GeminiOption customizes a GeminiProvider.
type GeminiOption func(*GeminiProvider)

// WithBaseURL points the provider at another endpoint (proxies, tests).
func WithBaseURL(baseURL string) GeminiOption {
	return func(p *GeminiProvider) {
		if baseURL != "" {
			p.config.HTTPOptions.BaseURL = strings.TrimRight(baseURL, "/") + "/"
		}
	}
}

// NewGeminiProvider creates a provider. The SDK client is built on the first
// Generate call, so a missing or bad key surfaces as an error there.
func NewGeminiProvider(client *http.Client, apiKey string, opts ...GeminiOption) *GeminiProvider {
	p := &GeminiProvider{
		name: "gemini",
		config: genai.ClientConfig{
			APIKey:      apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPClient:  client,
			HTTPOptions: genai.HTTPOptions{BaseURL: DefaultGeminiBaseURL + "/"},
		},
		circuit: newCircuitBreaker("gemini"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GeminiProvider) Name() string {
	return p.name
}

func (p *GeminiProvider) genaiClient(ctx context.Context) (*genai.Client, error) {
	p.once.Do(func() {
		cfg := p.config
		p.client, p.initErr = genai.NewClient(ctx, &cfg)
	})
	return p.client, p.initErr
}

// Generate sends req.Prompt to req.Model, with Google Search grounding when
// requested, and returns the answer text plus its grounding chunks.
func (p *GeminiProvider) Generate(ctx context.Context, req weather.GenerateRequest) (weather.Generation, error) {
	if req.Model == "" {
		return weather.Generation{}, fmt.Errorf("gemini: model is required")
	}
	if err := ctx.Err(); err != nil {
		return weather.Generation{}, fmt.Errorf("gemini: %w", err)
	}

	client, err := p.genaiClient(ctx)
	if err != nil {
		return weather.Generation{}, fmt.Errorf("gemini: create client: %w", err)
	}

	var config *genai.GenerateContentConfig
	if req.SearchGrounding {
		config = &genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		}
	}

	resp, err := execute(p.circuit, func() (*genai.GenerateContentResponse, error) {
		resp, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), config)
		if err != nil {
			return nil, classifyAPIError(err)
		}
		return resp, nil
	})
	if err != nil {
		return weather.Generation{}, fmt.Errorf("gemini: %w", err)
	}

	return toGeneration(resp)
}

func toGeneration(resp *genai.GenerateContentResponse) (weather.Generation, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return weather.Generation{}, fmt.Errorf("gemini: prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return weather.Generation{}, fmt.Errorf("gemini: %w", errNoCandidates)
	}

	first := resp.Candidates[0]

	var text strings.Builder
	if first.Content != nil {
		for _, pt := range first.Content.Parts {
			if pt == nil || pt.Thought {
				continue
			}
			text.WriteString(pt.Text)
		}
	}

	gen := weather.Generation{Text: text.String()}
	if first.GroundingMetadata != nil {
		for _, ch := range first.GroundingMetadata.GroundingChunks {
			if ch == nil {
				continue
			}
			var web *weather.WebSource
			if ch.Web != nil {
				web = &weather.WebSource{URI: ch.Web.URI, Title: ch.Web.Title}
			}
			gen.Chunks = append(gen.Chunks, weather.GroundingChunk{Web: web})
		}
	}
	return gen, nil
}
