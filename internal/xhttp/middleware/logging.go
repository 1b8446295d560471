package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/garrettladley/moves/internal/xslog"
)

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *statusRecorder) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Logging writes one line per callback request: debug for successes, warn
// once the browser was sent an error page.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		level := slog.LevelDebug
		if rec.status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}
		xslog.FromContext(r.Context()).LogAttrs(
			r.Context(),
			level,
			"callback request",
			xslog.RequestGroup(r),
			xslog.ResponseGroup(rec.status, time.Since(start)),
		)
	})
}
