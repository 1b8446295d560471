package oauth

import (
	"time"

	"github.com/garrettladley/moves/pkg/moves"
	"golang.org/x/oauth2"
)

const (
	defaultTokenType = "Bearer"
	extraUserID      = "user_id"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	UserID       int64  `json:"user_id"`
}

// DecodeToken turns an access_token endpoint response into an oauth2.Token.
// The Moves user id is available as token.Extra("user_id").
func DecodeToken(resp *moves.Response) (*oauth2.Token, error) {
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var body tokenResponse
	if err := resp.Decode(&body); err != nil {
		return nil, err
	}
	if body.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	token := &oauth2.Token{
		AccessToken:  body.AccessToken,
		TokenType:    body.TokenType,
		RefreshToken: body.RefreshToken,
	}
	if token.TokenType == "" {
		token.TokenType = defaultTokenType
	}
	if body.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	}

	return token.WithExtra(map[string]any{extraUserID: body.UserID}), nil
}

// UserID returns the Moves user id carried by a freshly decoded token, or 0.
func UserID(token *oauth2.Token) int64 {
	if id, ok := token.Extra(extraUserID).(int64); ok {
		return id
	}
	return 0
}
