// Package moves is a thin client for the Moves OAuth2 REST API.
//
// It builds authorization URLs, exchanges authorization codes and refresh
// tokens, inspects token metadata and issues authenticated GET requests.
// Response bodies are returned verbatim; the client never models payloads.
package moves

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/garrettladley/moves/internal/xhttp"
	"github.com/garrettladley/moves/internal/xslog"
	"golang.org/x/oauth2"
)

const (
	DefaultOAuthBase    = "https://api.moves-app.com/oauth/v1"
	DefaultAPIBase      = "https://api.moves-app.com/api/1.1"
	DefaultAuthorizeURL = "/authorize"
)

const (
	accessTokenPath = "/access_token"
	tokenInfoPath   = "/tokeninfo"
)

// Config is the client configuration. Zero fields fall back to defaults.
type Config struct {
	OAuthBase    string
	APIBase      string
	AuthorizeURL string
	ClientID     string
	// ClientSecret is only needed for Token and RefreshToken.
	ClientSecret string
	RedirectURI  string
}

// DefaultConfig returns the production Moves endpoints.
func DefaultConfig() Config {
	return Config{
		OAuthBase:    DefaultOAuthBase,
		APIBase:      DefaultAPIBase,
		AuthorizeURL: DefaultAuthorizeURL,
	}
}

func (c Config) merge(overrides Config) Config {
	pick := func(def string, override string) string {
		if override != "" {
			return override
		}
		return def
	}
	return Config{
		OAuthBase:    pick(c.OAuthBase, overrides.OAuthBase),
		APIBase:      pick(c.APIBase, overrides.APIBase),
		AuthorizeURL: pick(c.AuthorizeURL, overrides.AuthorizeURL),
		ClientID:     pick(c.ClientID, overrides.ClientID),
		ClientSecret: pick(c.ClientSecret, overrides.ClientSecret),
		RedirectURI:  pick(c.RedirectURI, overrides.RedirectURI),
	}
}

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Doer = (*http.Client)(nil)

// Client calls the Moves OAuth and REST endpoints. It is safe for concurrent use.
type Client struct {
	config Config
	http   Doer
	logger *slog.Logger
}

type clientConfig struct {
	http    Doer
	logger  *slog.Logger
	timeout time.Duration
}

type Option func(*clientConfig)

// WithHTTPClient replaces the transport used for every request.
func WithHTTPClient(doer Doer) Option {
	return func(cfg *clientConfig) { cfg.http = doer }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// New merges cfg over DefaultConfig and requires a ClientID.
func New(cfg Config, opts ...Option) (*Client, error) {
	merged := DefaultConfig().merge(cfg)
	if merged.ClientID == "" {
		return nil, ErrMissingClientID
	}

	ccfg := &clientConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ccfg)
	}
	if ccfg.http == nil {
		ccfg.http = xhttp.NewHTTPClient(xhttp.WithTimeout(ccfg.timeout))
	}

	return &Client{
		config: merged,
		http:   ccfg.http,
		logger: ccfg.logger,
	}, nil
}

// Config returns a copy of the merged configuration.
func (c *Client) Config() Config {
	return c.config
}

// Endpoint returns the authorization and token URLs in x/oauth2 form.
func (c *Client) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:   c.config.OAuthBase + c.config.AuthorizeURL,
		TokenURL:  c.config.OAuthBase + accessTokenPath,
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

func (c *Client) get(ctx context.Context, u string) (*Response, error) {
	return c.do(ctx, http.MethodGet, u)
}

func (c *Client) post(ctx context.Context, u string) (*Response, error) {
	return c.do(ctx, http.MethodPost, u)
}

// do sends a bodyless request. Transport errors are returned as is.
func (c *Client) do(ctx context.Context, method string, u string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "moves request failed",
			xslog.RequestGroupURL(method, req.URL),
			xslog.Error(err),
		)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "moves request",
		xslog.RequestGroupURL(method, req.URL),
		xslog.ResponseGroup(resp.StatusCode, time.Since(start)),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
