package xhttp

import (
	"net"
	"net/http"
	"strings"
)

// GetRequestIP returns the client address, preferring the first hop listed
// in X-Forwarded-For.
func GetRequestIP(r *http.Request) string {
	if xff := r.Header.Get(XForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		first = strings.TrimSpace(first)
		if ip, _, err := net.SplitHostPort(first); err == nil {
			return ip
		}
		return first
	}
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	return r.RemoteAddr
}
