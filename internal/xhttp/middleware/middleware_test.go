package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garrettladley/moves/internal/xcontext"
	"github.com/google/go-cmp/cmp"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	mws := []func(http.Handler) http.Handler{mark("a"), mark("b"), mark("c")}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mws...)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if diff := cmp.Diff([]string{"a", "b", "c", "handler"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	order = nil
	Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}), mws...).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if diff := cmp.Diff([]string{"a", "b", "c"}, order); diff != "" {
		t.Errorf("second chain order mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID(WithIDFunc(func(*http.Request) string { return "req-1" }))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = xcontext.GetRequestID(r.Context())
		}),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback", nil))

	if seen != "req-1" {
		t.Errorf("context request id = %q, want %q", seen, "req-1")
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-1" {
		t.Errorf("X-Request-ID = %q, want %q", got, "req-1")
	}
}

func TestRequestIDDefaultIsUnique(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	ids := make(map[string]struct{})
	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get("X-Request-ID")
		if id == "" {
			t.Fatal("X-Request-ID is empty")
		}
		ids[id] = struct{}{}
	}
	if len(ids) != 3 {
		t.Errorf("got %d distinct ids, want 3", len(ids))
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Chain(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
		Logger(logger),
		Recovery,
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?code=secret", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Errorf("log = %q, want panic recovered entry", buf.String())
	}
	if strings.Contains(buf.String(), "secret") {
		t.Errorf("log leaked query string: %q", buf.String())
	}
}

func TestRecoveryRepanicsOnAbort(t *testing.T) {
	t.Parallel()

	h := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) }))

	defer func() {
		if r := recover(); r != http.ErrAbortHandler {
			t.Errorf("recover() = %v, want http.ErrAbortHandler", r)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SecurityHeaders(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "no-referrer",
		"Cache-Control":          "no-store",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}
