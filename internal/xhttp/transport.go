package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/moves/internal/version"
)

type movesTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*movesTransport)(nil)

func (t *movesTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, version.UserAgent())
	req.Header.Set(Accept, applicationJSON)
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper that sets the client's
// identifying headers.
func NewTransport() http.RoundTripper {
	return &movesTransport{base: http.DefaultTransport}
}
