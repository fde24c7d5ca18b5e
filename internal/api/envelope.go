package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"job-board-web/pkg/httpclient"
)

// ServerError is a response the API delivered with success=false.
type ServerError struct {
	Path    string
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: request rejected by server", e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// envelope is the Result / DataResult wrapper every endpoint answers with.
type envelope struct {
	Message string
	Success bool
	Data    json.RawMessage
}

func (e *envelope) UnmarshalJSON(b []byte) error {
	var raw struct {
		Message string          `json:"message"`
		Success *bool           `json:"success"`
		Succes  *bool           `json:"succes"` // spelling used by the deployed backend
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.Success != nil:
		e.Success = *raw.Success
	case raw.Succes != nil:
		e.Success = *raw.Succes
	default:
		return fmt.Errorf("response has no success flag")
	}
	e.Message = raw.Message
	e.Data = raw.Data
	return nil
}

// Doer is the slice of the HTTP adapter the services need.
type Doer interface {
	Do(ctx context.Context, method, path string, query url.Values, body any, out any) error
}

// call performs one request and reduces the envelope to an error.
func call(ctx context.Context, c Doer, method, path string, query url.Values, body any) (*envelope, error) {
	var env envelope
	if err := c.Do(ctx, method, path, query, body, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &ServerError{Path: path, Message: env.Message}
	}
	return &env, nil
}

// fetch decodes a DataResult<T>. A successful null payload is the zero T.
func fetch[T any](ctx context.Context, c Doer, path string, query url.Values) (T, error) {
	return decodeData[T](ctx, c, path, query, false)
}

// fetchRequired decodes a DataResult<T> whose payload must be present. A
// successful response without data is reported as a *ServerError carrying
// the envelope message.
func fetchRequired[T any](ctx context.Context, c Doer, path string, query url.Values) (T, error) {
	return decodeData[T](ctx, c, path, query, true)
}

func decodeData[T any](ctx context.Context, c Doer, path string, query url.Values, required bool) (T, error) {
	var out T
	env, err := call(ctx, c, http.MethodGet, path, query, nil)
	if err != nil {
		return out, err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		if required {
			return out, &ServerError{Path: path, Message: env.Message}
		}
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, &httpclient.DecodeError{Method: http.MethodGet, Path: path, Err: err}
	}
	return out, nil
}

// send posts a body to an endpoint answering with a plain Result and
// returns the server's confirmation message.
func send(ctx context.Context, c Doer, path string, body any) (string, error) {
	env, err := call(ctx, c, http.MethodPost, path, nil, body)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
