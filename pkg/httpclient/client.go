package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HttpClient talks JSON to a single remote API rooted at baseURL.
// It never retries; a failed call is reported to the caller as-is.
type HttpClient struct {
	client  *http.Client
	baseURL string
	headers map[string]string
}

// Option customises an HttpClient.
type Option func(*HttpClient)

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(h *HttpClient) {
		h.headers[key] = value
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(h *HttpClient) {
		h.client.Transport = rt
	}
}

func NewHttpClient(baseURL string, timeout time.Duration, opts ...Option) *HttpClient {
	h := &HttpClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: map[string]string{"Accept": "application/json"},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HttpClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	return h.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (h *HttpClient) Post(ctx context.Context, path string, body any, out any) error {
	return h.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Do sends one request and decodes the JSON response into out.
// Non-2xx responses yield *StatusError, undecodable bodies yield *DecodeError,
// anything else is a transport failure wrapped from net/http.
func (h *HttpClient) Do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := h.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request %s %s: %w", method, path, err)
	}
	for key, value := range h.headers {
		req.Header.Set(key, value)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(method, path, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Method: method, Path: path, Err: err}
	}
	return nil
}
