package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrNoJSONObject is returned when the model text contains no '{'.
	ErrNoJSONObject = errors.New("no json object in model response")
	// ErrInvalidJSON is returned when no candidate object in the text decodes.
	ErrInvalidJSON = errors.New("invalid json in model response")
	// ErrInvalidSchema is returned when the payload decodes but fails validation.
	ErrInvalidSchema = errors.New("forecast payload failed validation")
)

// ProviderError reports a failed call to the external model: transport, auth or quota.
type ProviderError struct {
	Model string
	Err   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ParseError reports a model response that could not be turned into a Forecast.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("parse forecast: %v", e.Err)
	}
	return fmt.Sprintf("parse forecast: %s: %v", e.Reason, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorKind classifies err as "provider", "parse" or "internal".
func ErrorKind(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return "provider"
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return "parse"
	}
	return "internal"
}
