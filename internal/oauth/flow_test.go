package oauth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/garrettladley/moves/internal/storage"
	"github.com/garrettladley/moves/pkg/moves"
)

func newFakeProvider(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/oauth/v1/access_token" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		if q.Get("grant_type") != "authorization_code" || q.Get("code") != "the-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"invalid_grant"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"at","token_type":"bearer","expires_in":3600,"refresh_token":"rt","user_id":7}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// driveBrowser plays the user agent: it follows the login redirect, reads
// the state the flow generated and calls back with code.
func driveBrowser(t *testing.T, code string, tamperState bool) (func(string) error, <-chan struct{}) {
	t.Helper()

	done := make(chan struct{})

	noRedirect := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}

	return func(startURL string) error {
		go func() {
			defer close(done)

			req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, startURL, nil)
			if err != nil {
				t.Errorf("building login request: %v", err)
				return
			}
			resp, err := noRedirect.Do(req)
			if err != nil {
				t.Errorf("login request: %v", err)
				return
			}
			_ = resp.Body.Close()

			if resp.StatusCode != http.StatusFound {
				t.Errorf("login status = %d, want %d", resp.StatusCode, http.StatusFound)
				return
			}
			loc, err := url.Parse(resp.Header.Get("Location"))
			if err != nil {
				t.Errorf("parsing Location: %v", err)
				return
			}
			state := loc.Query().Get("state")
			if tamperState {
				state = "forged"
			}

			callback := strings.TrimSuffix(startURL, startPath) + "/callback?" + url.Values{
				"code":  {code},
				"state": {state},
			}.Encode()
			req, err = http.NewRequestWithContext(t.Context(), http.MethodGet, callback, nil)
			if err != nil {
				t.Errorf("building callback request: %v", err)
				return
			}
			resp, err = http.DefaultClient.Do(req)
			if err != nil {
				t.Errorf("callback request: %v", err)
				return
			}
			_ = resp.Body.Close()
		}()
		return nil
	}, done
}

func newFlowClient(t *testing.T, provider *httptest.Server) *moves.Client {
	t.Helper()

	client, err := moves.New(moves.Config{
		OAuthBase:    provider.URL + "/oauth/v1",
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURI:  "http://127.0.0.1:0/callback",
	}, moves.WithHTTPClient(provider.Client()))
	if err != nil {
		t.Fatalf("moves.New() error = %v", err)
	}
	return client
}

func TestLocalFlowRun(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider(t)
	client := newFlowClient(t, provider)
	store := storage.NewMemoryTokenStore()
	browse, done := driveBrowser(t, "the-code", false)

	flow := NewLocalFlow(client, store, []string{"activity", "location"},
		WithOutput(io.Discard),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithBrowser(browse),
	)

	token, err := flow.Run(t.Context())
	<-done
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if token.AccessToken != "at" || token.RefreshToken != "rt" {
		t.Errorf("Run() token = (%q, %q), want (%q, %q)", token.AccessToken, token.RefreshToken, "at", "rt")
	}
	if got := UserID(token); got != 7 {
		t.Errorf("UserID() = %d, want 7", got)
	}

	saved, err := store.Load(t.Context())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if saved.AccessToken != "at" {
		t.Errorf("stored AccessToken = %q, want %q", saved.AccessToken, "at")
	}
}

func TestLocalFlowRunStateMismatch(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider(t)
	client := newFlowClient(t, provider)
	store := storage.NewMemoryTokenStore()
	browse, done := driveBrowser(t, "the-code", true)

	flow := NewLocalFlow(client, store, []string{"activity"},
		WithOutput(io.Discard),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithBrowser(browse),
	)

	_, err := flow.Run(t.Context())
	<-done
	if !errors.Is(err, ErrStateMismatch) {
		t.Fatalf("Run() error = %v, want ErrStateMismatch", err)
	}
	if _, err := store.Load(t.Context()); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestCallbackAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		wantAddr string
		wantPath string
		wantErr  bool
	}{
		{name: "host port and path", uri: "http://127.0.0.1:8976/callback", wantAddr: "127.0.0.1:8976", wantPath: "/callback"},
		{name: "no path", uri: "http://localhost:8976", wantAddr: "localhost:8976", wantPath: "/"},
		{name: "empty", uri: "", wantErr: true},
		{name: "missing port", uri: "http://localhost/callback", wantErr: true},
		{name: "https", uri: "https://example.com:443/callback", wantErr: true},
		{name: "reserved path", uri: "http://localhost:8976/login", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			addr, path, err := callbackAddr(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("callbackAddr(%q) error = nil, want error", tt.uri)
				}
				return
			}
			if err != nil {
				t.Fatalf("callbackAddr(%q) error = %v", tt.uri, err)
			}
			if addr != tt.wantAddr || path != tt.wantPath {
				t.Errorf("callbackAddr(%q) = (%q, %q), want (%q, %q)", tt.uri, addr, path, tt.wantAddr, tt.wantPath)
			}
		})
	}
}
