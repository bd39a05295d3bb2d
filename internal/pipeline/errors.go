// File: internal/pipeline/errors.go
package pipeline

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight is returned when a submission is attempted while an
// earlier one from the same pipeline instance is still outstanding.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// ServerError is a terminal non-2xx response from the remote service. When
// the response body carried a structured error message, Message holds it
// verbatim; otherwise Message is empty and Error falls back to the status.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("service returned status %d", e.StatusCode)
}

// NetworkError is a transport-level failure: the request never produced a
// terminal HTTP response (unreachable host, connection reset, truncated
// body).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
