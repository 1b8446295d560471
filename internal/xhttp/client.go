package xhttp

import (
	"net/http"
	"time"
)

type ClientOption func(*http.Client)

// WithTimeout sets the overall request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *http.Client) { c.Timeout = d }
}

// WithTransport replaces the base round tripper beneath the moves headers.
func WithTransport(base http.RoundTripper) ClientOption {
	return func(c *http.Client) { c.Transport = &movesTransport{base: base} }
}

func NewHTTPClient(opts ...ClientOption) *http.Client {
	c := &http.Client{Transport: NewTransport()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
