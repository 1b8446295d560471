package middleware

import (
	"log/slog"
	"net/http"

	"github.com/garrettladley/moves/internal/xcontext"
	"github.com/garrettladley/moves/internal/xslog"
)

// Logger stores base in the request context, tagged with the request id
// and client address. Must run after RequestID.
func Logger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := xslog.WithLogger(r.Context(), base)

			attrs := []slog.Attr{xslog.RequestIP(r)}
			if id, ok := xcontext.GetRequestID(ctx); ok {
				attrs = append(attrs, xslog.RequestID(id))
			}
			next.ServeHTTP(w, r.WithContext(xslog.With(ctx, attrs...)))
		})
	}
}
