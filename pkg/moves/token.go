package moves

import "context"

const (
	grantTypeAuthorizationCode = "authorization_code"
	grantTypeRefreshToken      = "refresh_token"
)

// Token exchanges an authorization code for an access token. The token
// endpoint's response is returned verbatim.
func (c *Client) Token(ctx context.Context, code string) (*Response, error) {
	u, err := c.tokenURL(code)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, u)
}

// RefreshToken exchanges a refresh token for a new access token with the
// scope of the original grant.
func (c *Client) RefreshToken(ctx context.Context, token string) (*Response, error) {
	return c.RefreshTokenWithScope(ctx, token, "")
}

// RefreshTokenWithScope is RefreshToken requesting scope. An empty scope
// is omitted from the request.
func (c *Client) RefreshTokenWithScope(ctx context.Context, token string, scope string) (*Response, error) {
	u, err := c.refreshURL(token, scope)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, u)
}

// TokenInfo fetches metadata about an access token.
func (c *Client) TokenInfo(ctx context.Context, token string) (*Response, error) {
	u, err := c.tokenInfoURL(token)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, u)
}

func (c *Client) tokenURL(code string) (string, error) {
	if code == "" {
		return "", ErrCodeRequired
	}
	if c.config.ClientSecret == "" {
		return "", ErrMissingClientSecret
	}

	q := newQuery().
		set("grant_type", grantTypeAuthorizationCode).
		set("code", code).
		set("client_id", c.config.ClientID).
		set("client_secret", c.config.ClientSecret).
		setIf("redirect_uri", c.config.RedirectURI)

	return c.config.OAuthBase + accessTokenPath + "?" + q.encode(), nil
}

func (c *Client) refreshURL(token string, scope string) (string, error) {
	if token == "" {
		return "", ErrTokenRequired
	}
	if c.config.ClientSecret == "" {
		return "", ErrMissingClientSecret
	}

	q := newQuery().
		set("grant_type", grantTypeRefreshToken).
		set("refresh_token", token).
		set("client_id", c.config.ClientID).
		set("client_secret", c.config.ClientSecret).
		setIf("scope", scope)

	return c.config.OAuthBase + accessTokenPath + "?" + q.encode(), nil
}

func (c *Client) tokenInfoURL(token string) (string, error) {
	if token == "" {
		return "", ErrTokenRequired
	}
	q := newQuery().set("access_token", token)
	return c.config.OAuthBase + tokenInfoPath + "?" + q.encode(), nil
}
