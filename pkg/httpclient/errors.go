package httpclient

import (
	"encoding/json"
	"fmt"
)

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the "message" field of a JSON error body, if any.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// DecodeError is returned when a 2xx body is not the JSON we expected.
type DecodeError struct {
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse %s %s response: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newStatusError(method, path string, status int, body []byte) *StatusError {
	var payload struct {
		Message string `json:"message"`
	}
	// best effort, error bodies are not always JSON
	_ = json.Unmarshal(body, &payload)

	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Message:    payload.Message,
	}
}
