package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoCandidates = errors.New("no candidates in response")
)

// StatusError carries a non-2xx response from a provider.
type StatusError struct {
	Code    int
	Status  string
	Message string
	kind    error
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Code)
	}
	if e.Status != "" {
		return fmt.Sprintf("%v: %d %s: %s", e.kind, e.Code, e.Status, msg)
	}
	return fmt.Sprintf("%v: %d: %s", e.kind, e.Code, msg)
}

func (e *StatusError) Unwrap() error { return e.kind }

func newStatusError(code int, status, message string) *StatusError {
	se := &StatusError{Code: code, Status: status, Message: message}
	switch {
	case code == http.StatusTooManyRequests:
		se.kind = errRateLimited
	case code >= 500:
		se.kind = errServerError
	default:
		se.kind = errUnexpected
	}
	return se
}

// classifyAPIError turns an SDK API error into a *StatusError. Other errors
// (transport, context) are returned unchanged.
func classifyAPIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return newStatusError(apiErr.Code, apiErr.Status, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return newStatusError(apiErrPtr.Code, apiErrPtr.Status, apiErrPtr.Message)
	}
	return err
}

func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// execute runs one provider call through the circuit breaker. There is no
// retry: a failure is reported to the caller as is. An open breaker fails
// fast with errCircuitOpen.
func execute[T any](cb *gobreaker.CircuitBreaker, call func() (T, error)) (T, error) {
	var zero T

	result, err := cb.Execute(func() (interface{}, error) {
		v, callErr := call()
		if callErr != nil {
			return nil, callErr
		}
		return v, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return zero, err
	}

	v, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return v, nil
}
