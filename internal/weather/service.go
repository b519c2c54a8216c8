package weather

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Service turns a location query into a Forecast by asking a grounded model.
type Service struct {
	model     Model
	modelName string
	log       *zap.Logger
}

// NewService creates a new Service. modelName falls back to DefaultModel.
func NewService(model Model, modelName string, log *zap.Logger) *Service {
	if modelName == "" {
		modelName = DefaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		model:     model,
		modelName: modelName,
		log:       log.Named("forecast"),
	}
}

// FetchForecast asks the model for a forecast of locationQuery.
//
// Transport failures come back as *ProviderError, unusable text as *ParseError.
// Nothing is retried.
func (s *Service) FetchForecast(ctx context.Context, locationQuery string) (Forecast, error) {
	query := strings.TrimSpace(locationQuery)
	log := s.log.With(zap.String("query", query), zap.String("provider", s.model.Name()))

	gen, err := s.model.Generate(ctx, GenerateRequest{
		Model:           s.modelName,
		Prompt:          BuildPrompt(query),
		SearchGrounding: true,
	})
	if err != nil {
		log.Error("model call failed", zap.String("kind", "provider"), zap.Error(err))
		return Forecast{}, &ProviderError{Model: s.modelName, Err: err}
	}

	raw, err := ExtractJSON(gen.Text)
	if err != nil {
		log.Error("no forecast object in model text", zap.String("kind", "parse"), zap.String("raw", gen.Text), zap.Error(err))
		return Forecast{}, err
	}

	forecast, err := ParseForecast(raw)
	if err != nil {
		log.Error("forecast payload rejected", zap.String("kind", "parse"), zap.String("raw", raw), zap.Error(err))
		return Forecast{}, err
	}
	if n := len(forecast.Days); n < ForecastDays {
		log.Warn("short forecast accepted", zap.Int("days", n))
	}

	forecast.Sources = NormalizeSources(gen.Chunks)

	log.Debug("forecast parsed",
		zap.String("location", forecast.Location),
		zap.Int("days", len(forecast.Days)),
		zap.Int("sources", len(forecast.Sources)),
	)
	return forecast, nil
}
