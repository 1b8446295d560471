package moves

import "context"

// Callback receives the outcome of an asynchronous call exactly once.
type Callback func(resp *Response, err error)

// The Async variants validate their arguments synchronously and return the
// precondition error, or ErrInvalidCallback for a nil callback. Otherwise
// they return nil at once and deliver the result to callback from another
// goroutine. Cancellation and timeouts come from ctx and the transport.

func (c *Client) TokenAsync(ctx context.Context, code string, callback Callback) error {
	u, err := c.tokenURL(code)
	if err != nil {
		return err
	}
	return c.dispatch(ctx, callback, c.post, u)
}

func (c *Client) RefreshTokenAsync(ctx context.Context, token string, callback Callback) error {
	return c.RefreshTokenWithScopeAsync(ctx, token, "", callback)
}

func (c *Client) RefreshTokenWithScopeAsync(ctx context.Context, token string, scope string, callback Callback) error {
	u, err := c.refreshURL(token, scope)
	if err != nil {
		return err
	}
	return c.dispatch(ctx, callback, c.post, u)
}

func (c *Client) TokenInfoAsync(ctx context.Context, token string, callback Callback) error {
	u, err := c.tokenInfoURL(token)
	if err != nil {
		return err
	}
	return c.dispatch(ctx, callback, c.get, u)
}

func (c *Client) GetAsync(ctx context.Context, call string, accessToken string, callback Callback) error {
	u, err := c.getURL(call, accessToken)
	if err != nil {
		return err
	}
	return c.dispatch(ctx, callback, c.get, u)
}

func (c *Client) dispatch(
	ctx context.Context,
	callback Callback,
	send func(ctx context.Context, u string) (*Response, error),
	u string,
) error {
	if callback == nil {
		return ErrInvalidCallback
	}
	go func() {
		callback(send(ctx, u))
	}()
	return nil
}
