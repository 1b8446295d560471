package oauth

import "errors"

var (
	ErrNoToken             = errors.New("no stored token")
	ErrTokenExpired        = errors.New("token expired and no refresh token available")
	ErrStateMismatch       = errors.New("invalid state parameter")
	ErrMissingCode         = errors.New("missing authorization code")
	ErrAuthorizationDenied = errors.New("authorization denied")
	ErrRedirectURIRequired = errors.New("a redirect uri with host and port is required for the local flow")
	ErrMissingAccessToken  = errors.New("token response has no access_token")
)

const (
	ParamCode             = "code"
	ParamState            = "state"
	ParamError            = "error"
	ParamErrorDescription = "error_description"
)
