package middleware

import (
	"errors"
	"net/http"

	"github.com/garrettladley/moves/internal/xhttp"
	"github.com/garrettladley/moves/internal/xslog"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err == nil {
				return
			}
			if e, ok := err.(error); ok && errors.Is(e, http.ErrAbortHandler) {
				panic(err)
			}
			xslog.FromContext(r.Context()).ErrorContext(
				r.Context(),
				"panic recovered",
				xslog.RequestGroup(r),
				xslog.ErrorGroupWithStack(err),
			)
			xhttp.Error(w, http.StatusInternalServerError, "")
		}()
		next.ServeHTTP(w, r)
	})
}
