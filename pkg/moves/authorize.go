package moves

import (
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/garrettladley/moves/internal/xhttp"
)

const redirectingBody = "Redirecting..."

type AuthorizeOptions struct {
	// Scope is required, e.g. []string{"activity", "location"}.
	Scope       []string
	State       string
	RedirectURI string
}

// ResponseSink receives the redirect written by Redirect.
type ResponseSink interface {
	Header() http.Header
	WriteHeader(statusCode int)
	Write(b []byte) (int, error)
}

var _ ResponseSink = (http.ResponseWriter)(nil)

// Authorize returns the URL the user should be sent to in order to grant
// access.
func (c *Client) Authorize(opts AuthorizeOptions) (string, error) {
	if err := validateScope(opts.Scope); err != nil {
		return "", err
	}

	q := newQuery().
		set("client_id", c.config.ClientID).
		set("response_type", "code").
		set("scope", strings.Join(opts.Scope, " ")).
		setIf("state", opts.State).
		setIf("redirect_uri", opts.RedirectURI)

	return c.config.OAuthBase + c.config.AuthorizeURL + "?" + q.encode(), nil
}

// Redirect writes a 302 to the authorization URL. A nil sink, including a
// typed nil such as (*httptest.ResponseRecorder)(nil), returns
// ErrInvalidResponseSink.
func (c *Client) Redirect(w ResponseSink, opts AuthorizeOptions) error {
	if isNilSink(w) {
		return ErrInvalidResponseSink
	}

	authURL, err := c.Authorize(opts)
	if err != nil {
		return err
	}

	xhttp.SetHeaderContentTypeTextHTML(w)
	w.Header().Set(xhttp.Location, authURL)
	w.WriteHeader(http.StatusFound)
	_, err = w.Write([]byte(redirectingBody))
	return err
}

func isNilSink(w ResponseSink) bool {
	if w == nil {
		return true
	}
	switch v := reflect.ValueOf(w); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func validateScope(scope []string) error {
	if len(scope) == 0 {
		return ErrScopeRequired
	}
	for _, s := range scope {
		if s == "" || strings.ContainsFunc(s, unicode.IsSpace) {
			return ErrScopeNotSequence
		}
	}
	return nil
}
