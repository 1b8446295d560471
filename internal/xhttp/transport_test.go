package xhttp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func TestNewHTTPClientSetsHeaders(t *testing.T) {
	t.Parallel()

	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get(UserAgent)
		gotAccept = r.Header.Get(Accept)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(WithTransport(srv.Client().Transport), WithTimeout(5*time.Second))

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set(UserAgent, "caller")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()

	if !strings.HasPrefix(gotUA, "moves-go/") {
		t.Errorf("User-Agent = %q, want moves-go/ prefix", gotUA)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want %q", gotAccept, "application/json")
	}
	if got := req.Header.Get(UserAgent); got != "caller" {
		t.Errorf("caller request mutated: User-Agent = %q", got)
	}
	if client.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want %v", client.Timeout, 5*time.Second)
	}
}

func TestTransportWrapsError(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	rt := &movesTransport{base: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, base
	})}

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://example.com", nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	if _, err := rt.RoundTrip(req); !errors.Is(err, base) {
		t.Errorf("RoundTrip() error = %v, want wrapping %v", err, base)
	}
}
