package moves

import "errors"

// Precondition errors. Each is returned before any request is built.
var (
	ErrMissingClientID     = errors.New("moves: missing client id")
	ErrScopeRequired       = errors.New("moves: scope is required")
	ErrScopeNotSequence    = errors.New("moves: scope must be a sequence of scope identifiers")
	ErrInvalidResponseSink = errors.New("moves: authorize requires a valid response sink")
	ErrCodeRequired        = errors.New("moves: you must include a code")
	ErrMissingClientSecret = errors.New("moves: missing client secret")
	ErrInvalidCallback     = errors.New("moves: invalid callback")
	ErrTokenRequired       = errors.New("moves: you must include a token")
	ErrCallRequired        = errors.New("moves: call is required, see https://dev.moves-app.com/docs/api")
	ErrAccessTokenRequired = errors.New("moves: valid access token is required")
)
