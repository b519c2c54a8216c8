package weather

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	gen  Generation
	err  error
	reqs []GenerateRequest
}

func (m *fakeModel) Name() string { return "fake" }

func (m *fakeModel) Generate(_ context.Context, req GenerateRequest) (Generation, error) {
	m.reqs = append(m.reqs, req)
	return m.gen, m.err
}

func TestServiceFetchForecast(t *testing.T) {
	payload, err := json.Marshal(sampleForecast(ForecastDays))
	require.NoError(t, err)

	model := &fakeModel{gen: Generation{
		Text: "Sure! ```json\n" + string(payload) + "\n```",
		Chunks: []GroundingChunk{
			{Web: &WebSource{URI: "http://a", Title: "A"}},
			{Web: &WebSource{URI: "", Title: "B"}},
		},
	}}
	svc := NewService(model, "", nil)

	f, err := svc.FetchForecast(context.Background(), "  New York  ")
	require.NoError(t, err)

	assert.Equal(t, "New York, USA", f.Location)
	assert.Len(t, f.Days, ForecastDays)
	// Grounding metadata replaces whatever sources the model wrote itself.
	assert.Equal(t, []Source{{URI: "http://a", Title: "A"}}, f.Sources)

	require.Len(t, model.reqs, 1)
	req := model.reqs[0]
	assert.Equal(t, DefaultModel, req.Model)
	assert.True(t, req.SearchGrounding)
	assert.Contains(t, req.Prompt, "New York")
	assert.Contains(t, req.Prompt, `"precipitationChance"`)
	assert.Contains(t, req.Prompt, "Google Search")
}

func TestServiceFetchForecastNoSources(t *testing.T) {
	payload, err := json.Marshal(sampleForecast(1))
	require.NoError(t, err)

	svc := NewService(&fakeModel{gen: Generation{Text: string(payload)}}, "gemini-test", nil)

	f, err := svc.FetchForecast(context.Background(), "Paris")
	require.NoError(t, err)
	assert.NotNil(t, f.Sources)
	assert.Empty(t, f.Sources)
}

func TestServiceFetchForecastProviderError(t *testing.T) {
	cause := errors.New("403 PERMISSION_DENIED")
	svc := NewService(&fakeModel{err: cause}, "gemini-test", nil)

	_, err := svc.FetchForecast(context.Background(), "Paris")
	require.Error(t, err)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "gemini-test", pe.Model)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "provider", ErrorKind(err))
}

func TestServiceFetchForecastParseError(t *testing.T) {
	for name, text := range map[string]string{
		"no braces":    "I'm sorry, I can't help with that.",
		"broken json":  `{"location": "Paris", `,
		"wrong schema": `{"location": "Paris"}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewService(&fakeModel{gen: Generation{Text: text}}, "gemini-test", nil)

			_, err := svc.FetchForecast(context.Background(), "Paris")
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "parse", ErrorKind(err))
		})
	}
}

func TestNormalizeSources(t *testing.T) {
	got := NormalizeSources([]GroundingChunk{
		{Web: &WebSource{URI: "http://a", Title: "A"}},
		{Web: &WebSource{URI: "", Title: "B"}},
		{Web: &WebSource{URI: "http://c", Title: ""}},
		{Web: &WebSource{URI: "http://d", Title: " Météo "}},
		{Web: nil},
		{Web: &WebSource{URI: "http://a", Title: "A"}},
	})

	// Order is kept, values are not rewritten and duplicates are not removed.
	assert.Equal(t, []Source{
		{URI: "http://a", Title: "A"},
		{URI: "http://d", Title: " Météo "},
		{URI: "http://a", Title: "A"},
	}, got)

	assert.NotNil(t, NormalizeSources(nil))
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("40.0, -74.0")
	assert.Contains(t, p, "40.0, -74.0")
	assert.Contains(t, p, "7 days total")
	assert.True(t, strings.Contains(p, `"forecast": [`))
}
