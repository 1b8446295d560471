package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/garrettladley/moves/internal/version"
	"github.com/garrettladley/moves/internal/xhttp"
)

const keyError = "error"

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Method(method string) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, method)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func RequestMethod(r *http.Request) slog.Attr {
	return Method(r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	return Path(r.URL.Path)
}

func IP(ip string) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, ip)
}

func RequestIP(r *http.Request) slog.Attr {
	return IP(xhttp.GetRequestIP(r))
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Addr(addr string) slog.Attr {
	const addrKey = "addr"
	return slog.String(addrKey, addr)
}

func Store(kind string) slog.Attr {
	const storeKey = "store"
	return slog.String(storeKey, kind)
}

func Expiry(t time.Time) slog.Attr {
	const expiryKey = "expiry"
	return slog.Time(expiryKey, t)
}

func Call(call string) slog.Attr {
	const callKey = "call"
	return slog.String(callKey, call)
}
