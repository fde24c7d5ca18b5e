package controller

import (
	"errors"

	"job-board-web/internal/api"
	"job-board-web/pkg/httpclient"
)

var (
	// ErrSubmitInProgress is returned while a submission is in flight.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrAlreadySubmitted is returned once a form has been accepted.
	ErrAlreadySubmitted = errors.New("form already submitted")
	// ErrUnknownField is returned for edits of a field the draft does not have.
	ErrUnknownField = errors.New("unknown form field")
)

// ValidationError is a local check that failed before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// connectFailureMessage is shown when the listing cannot reach the API.
const connectFailureMessage = "Failed to connect to the server"

// UserMessage picks the text shown for err. Server rejections use the
// server's message or serverFallback; everything else uses the message a
// non-2xx body carried, or transportFallback.
func UserMessage(err error, serverFallback, transportFallback string) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var serverErr *api.ServerError
	if errors.As(err, &serverErr) {
		if serverErr.Message != "" {
			return serverErr.Message
		}
		return serverFallback
	}

	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return transportFallback
}

// isTransport reports whether err came from the adapter rather than the server.
func isTransport(err error) bool {
	var serverErr *api.ServerError
	var validationErr *ValidationError
	return !errors.As(err, &serverErr) && !errors.As(err, &validationErr)
}

// ValidateRequest checks the validate tags of an API request that has no
// form of its own.
func ValidateRequest(v any) error {
	return checkStruct(v, nil, nil)
}
