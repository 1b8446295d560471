package xhttp

import (
	"fmt"
	"net/http"
)

// Error writes a plain text error page for the browser. detail is shown
// after the status text when set.
func Error(w http.ResponseWriter, status int, detail string) {
	msg := http.StatusText(status)
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}
	http.Error(w, msg, status)
}
