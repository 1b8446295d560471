package moves

import (
	"context"
	"fmt"
	"net/url"
)

// Get issues an authenticated GET against the API. call is a path relative
// to APIBase and may carry its own query, e.g.
// "/user/summary/daily?from=20130101&to=20130107".
func (c *Client) Get(ctx context.Context, call string, accessToken string) (*Response, error) {
	u, err := c.getURL(call, accessToken)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, u)
}

func (c *Client) getURL(call string, accessToken string) (string, error) {
	if call == "" {
		return "", ErrCallRequired
	}
	if accessToken == "" {
		return "", ErrAccessTokenRequired
	}

	base, err := url.Parse(c.config.APIBase)
	if err != nil {
		return "", fmt.Errorf("parsing api base: %w", err)
	}
	callURL, err := url.Parse(call)
	if err != nil {
		return "", fmt.Errorf("parsing call: %w", err)
	}

	q := newQuery().
		merge(base.RawQuery).
		merge(callURL.RawQuery).
		set("access_token", accessToken)

	u := *base
	u.Path = base.Path + callURL.Path
	u.RawPath = ""
	u.RawQuery = q.encode()
	u.Fragment = ""

	return u.String(), nil
}
