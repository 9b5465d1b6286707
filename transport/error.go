package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnauthorized matches any [APIError] carrying status 401 via
// [errors.Is]. It is the sole trigger for session invalidation.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from either backend domain, normalized to
// one shape regardless of which backend produced it.
//
// Message is the structured detail from a `{"message": ...}` error body
// when the backend provided one, otherwise empty.
type APIError struct {
	Domain     Domain
	StatusCode int
	Message    string
	RequestID  string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s backend: %d: %s", e.Domain, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s backend: %d", e.Domain, e.StatusCode)
}

// Is reports 401 errors as [ErrUnauthorized].
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// errorBody is the failure shape shared by both backends.
type errorBody struct {
	Message string `json:"message"`
}

const maxErrorBody = 64 << 10

func newAPIError(domain Domain, resp *http.Response) *APIError {
	apiErr := &APIError{
		Domain:     domain,
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(requestIDHeader),
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
