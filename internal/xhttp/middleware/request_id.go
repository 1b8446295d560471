package middleware

import (
	"net/http"

	"github.com/garrettladley/moves/internal/xcontext"
	"github.com/garrettladley/moves/internal/xhttp"
	"github.com/google/uuid"
)

type RequestIDOption func(*requestIDConfig)

type requestIDConfig struct {
	idFunc func(*http.Request) string
}

// WithIDFunc overrides how request ids are generated.
func WithIDFunc(f func(*http.Request) string) RequestIDOption {
	return func(c *requestIDConfig) { c.idFunc = f }
}

func RequestID(opts ...RequestIDOption) func(http.Handler) http.Handler {
	cfg := &requestIDConfig{
		idFunc: func(_ *http.Request) string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := cfg.idFunc(r)
			ctx := xcontext.SetRequestID(r.Context(), id)
			xhttp.SetHeaderRequestID(w, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
