package moves

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

type asyncCall func(ctx context.Context, c *Client, cb Callback) error

func TestAsyncDeliversOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       asyncCall
		wantMethod string
	}{
		{
			name:       "token",
			call:       func(ctx context.Context, c *Client, cb Callback) error { return c.TokenAsync(ctx, "code", cb) },
			wantMethod: http.MethodPost,
		},
		{
			name:       "refresh",
			call:       func(ctx context.Context, c *Client, cb Callback) error { return c.RefreshTokenAsync(ctx, "rt", cb) },
			wantMethod: http.MethodPost,
		},
		{
			name: "refresh with scope",
			call: func(ctx context.Context, c *Client, cb Callback) error {
				return c.RefreshTokenWithScopeAsync(ctx, "rt", "activity", cb)
			},
			wantMethod: http.MethodPost,
		},
		{
			name:       "token info",
			call:       func(ctx context.Context, c *Client, cb Callback) error { return c.TokenInfoAsync(ctx, "tok", cb) },
			wantMethod: http.MethodGet,
		},
		{
			name: "get",
			call: func(ctx context.Context, c *Client, cb Callback) error {
				return c.GetAsync(ctx, "/user/profile", "tok", cb)
			},
			wantMethod: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doer := &fakeDoer{body: `{"ok":true}`}
			c := newTestClient(t, Config{ClientID: "id", ClientSecret: "secret"}, doer)

			var calls atomic.Int32
			done := make(chan *Response, 1)
			err := tt.call(t.Context(), c, func(resp *Response, err error) {
				calls.Add(1)
				if err != nil {
					t.Errorf("callback error = %v", err)
				}
				done <- resp
			})
			if err != nil {
				t.Fatalf("dispatch error = %v", err)
			}

			select {
			case resp := <-done:
				if resp == nil || string(resp.Body) != `{"ok":true}` {
					t.Errorf("callback response = %+v, want verbatim body", resp)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("callback was not invoked")
			}

			if got := calls.Load(); got != 1 {
				t.Errorf("callback invoked %d times, want 1", got)
			}
			reqs := doer.recorded()
			if len(reqs) != 1 || reqs[0].Method != tt.wantMethod {
				t.Errorf("requests = %+v, want one %s", reqs, tt.wantMethod)
			}
		})
	}
}

func TestAsyncPreconditions(t *testing.T) {
	t.Parallel()

	noop := func(*Response, error) {}

	tests := []struct {
		name    string
		cfg     Config
		call    func(ctx context.Context, c *Client) error
		wantErr error
	}{
		{
			name:    "token nil callback",
			cfg:     Config{ClientID: "id", ClientSecret: "secret"},
			call:    func(ctx context.Context, c *Client) error { return c.TokenAsync(ctx, "code", nil) },
			wantErr: ErrInvalidCallback,
		},
		{
			name:    "token code before callback",
			cfg:     Config{ClientID: "id", ClientSecret: "secret"},
			call:    func(ctx context.Context, c *Client) error { return c.TokenAsync(ctx, "", nil) },
			wantErr: ErrCodeRequired,
		},
		{
			name:    "token secret before callback",
			cfg:     Config{ClientID: "id"},
			call:    func(ctx context.Context, c *Client) error { return c.TokenAsync(ctx, "code", nil) },
			wantErr: ErrMissingClientSecret,
		},
		{
			name:    "refresh nil callback",
			cfg:     Config{ClientID: "id", ClientSecret: "secret"},
			call:    func(ctx context.Context, c *Client) error { return c.RefreshTokenAsync(ctx, "token", nil) },
			wantErr: ErrInvalidCallback,
		},
		{
			name:    "refresh token required",
			cfg:     Config{ClientID: "id", ClientSecret: "secret"},
			call:    func(ctx context.Context, c *Client) error { return c.RefreshTokenAsync(ctx, "", noop) },
			wantErr: ErrTokenRequired,
		},
		{
			name: "refresh with scope secret required",
			cfg:  Config{ClientID: "id"},
			call: func(ctx context.Context, c *Client) error {
				return c.RefreshTokenWithScopeAsync(ctx, "token", "scope", noop)
			},
			wantErr: ErrMissingClientSecret,
		},
		{
			name:    "token info nil callback",
			cfg:     Config{ClientID: "id"},
			call:    func(ctx context.Context, c *Client) error { return c.TokenInfoAsync(ctx, "tok", nil) },
			wantErr: ErrInvalidCallback,
		},
		{
			name:    "token info token required",
			cfg:     Config{ClientID: "id"},
			call:    func(ctx context.Context, c *Client) error { return c.TokenInfoAsync(ctx, "", noop) },
			wantErr: ErrTokenRequired,
		},
		{
			name:    "get call required",
			cfg:     Config{ClientID: "id"},
			call:    func(ctx context.Context, c *Client) error { return c.GetAsync(ctx, "", "", noop) },
			wantErr: ErrCallRequired,
		},
		{
			name: "get access token required",
			cfg:  Config{ClientID: "id"},
			call: func(ctx context.Context, c *Client) error {
				return c.GetAsync(ctx, "/user/profile", "", noop)
			},
			wantErr: ErrAccessTokenRequired,
		},
		{
			name: "get nil callback",
			cfg:  Config{ClientID: "id"},
			call: func(ctx context.Context, c *Client) error {
				return c.GetAsync(ctx, "/user/profile", "tok", nil)
			},
			wantErr: ErrInvalidCallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doer := &fakeDoer{}
			c := newTestClient(t, tt.cfg, doer)

			if err := tt.call(t.Context(), c); !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if n := len(doer.recorded()); n != 0 {
				t.Errorf("transport invoked %d times, want 0", n)
			}
		})
	}
}

func TestAsyncDeliversTransportError(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("dial tcp: connection refused")
	c := newTestClient(t, Config{ClientID: "id"}, &fakeDoer{err: transportErr})

	errCh := make(chan error, 1)
	err := c.TokenInfoAsync(t.Context(), "tok", func(resp *Response, err error) {
		if resp != nil {
			t.Errorf("callback response = %+v, want nil", resp)
		}
		errCh <- err
	})
	if err != nil {
		t.Fatalf("TokenInfoAsync() error = %v", err)
	}

	select {
	case got := <-errCh:
		if !errors.Is(got, transportErr) {
			t.Errorf("callback error = %v, want %v", got, transportErr)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not invoked")
	}
}
