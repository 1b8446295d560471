package middleware

import "net/http"

const (
	xContentTypeOpts = "X-Content-Type-Options"
	xFrameOpts       = "X-Frame-Options"
	referrerPolicy   = "Referrer-Policy"
	cacheControl     = "Cache-Control"
)

// SecurityHeaders keeps callback URLs, which carry authorization codes, out
// of referrers and caches.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(xContentTypeOpts, "nosniff")
		w.Header().Set(xFrameOpts, "DENY")
		w.Header().Set(referrerPolicy, "no-referrer")
		w.Header().Set(cacheControl, "no-store")
		next.ServeHTTP(w, r)
	})
}
