package xhttp

import "net/http"

const (
	XForwardedFor = "X-Forwarded-For"
	XRequestID    = "X-Request-ID"
	UserAgent     = "User-Agent"
	Accept        = "Accept"
	Location      = "Location"
	ContentType   = "Content-Type"
)

const (
	applicationJSON = "application/json"
	textHTML        = "text/html"
)

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	w.Header().Set(XRequestID, requestID)
}

func SetHeaderContentTypeTextHTML(w http.ResponseWriter) {
	w.Header().Set(ContentType, textHTML)
}
