package xslog

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/garrettladley/moves/internal/xcontext"
)

const (
	groupRequest  = "request"
	groupResponse = "response"
	groupError    = "error"
)

const (
	keyID         = "id"
	keyHost       = "host"
	keyUserAgent  = "user_agent"
	keyProto      = "proto"
	keyStatusText = "status_text"
	keyDurationMS = "duration_ms"
	keyType       = "type"
	keyValue      = "value"
)

// RequestGroup describes an inbound request. The query string is left out
// because OAuth callbacks carry codes and tokens in it.
func RequestGroup(r *http.Request) slog.Attr {
	attrs := []slog.Attr{
		RequestMethod(r),
		RequestPath(r),
		RequestIP(r),
		slog.String(keyHost, r.Host),
		slog.String(keyUserAgent, r.UserAgent()),
		slog.String(keyProto, r.Proto),
	}
	if id, ok := xcontext.GetRequestID(r.Context()); ok {
		attrs = append(attrs, slog.String(keyID, id))
	}
	return slog.GroupAttrs(groupRequest, attrs...)
}

// RequestGroupURL describes an outbound request by host and path only.
func RequestGroupURL(method string, u *url.URL) slog.Attr {
	return slog.Group(groupRequest,
		Method(method),
		slog.String(keyHost, u.Host),
		Path(u.Path),
	)
}

func ResponseGroup(status int, duration time.Duration) slog.Attr {
	return slog.Group(groupResponse,
		HTTPStatus(status),
		slog.String(keyStatusText, http.StatusText(status)),
		Duration(duration),
		slog.Int64(keyDurationMS, duration.Milliseconds()),
	)
}

func ErrorGroupWithStack(err any) slog.Attr {
	return slog.Group(groupError,
		slog.Any(keyValue, err),
		slog.String(keyType, fmt.Sprintf("%T", err)),
		Stack(),
	)
}
