package api

import (
	"job-board-web/internal/config"
	"job-board-web/pkg/httpclient"
)

// NewClient builds the HTTP adapter for the API described by cfg.
func NewClient(cfg config.APIConfig) *httpclient.HttpClient {
	opts := make([]httpclient.Option, 0, len(cfg.Headers))
	for key, value := range cfg.Headers {
		opts = append(opts, httpclient.WithHeader(key, value))
	}
	return httpclient.NewHttpClient(cfg.BaseURL, cfg.Timeout, opts...)
}
