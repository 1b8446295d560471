package oauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/garrettladley/moves/internal/storage"
	"github.com/garrettladley/moves/internal/xhttp"
	"github.com/garrettladley/moves/internal/xhttp/middleware"
	"github.com/garrettladley/moves/internal/xslog"
	"github.com/garrettladley/moves/pkg/moves"
	"golang.org/x/oauth2"
)

const (
	startPath         = "/login"
	shutdownTime      = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type tokenResult struct {
	token *oauth2.Token
	err   error
}

// LocalFlow runs the authorization code flow against a loopback server
// listening on the client's redirect URI.
type LocalFlow struct {
	client      *moves.Client
	store       storage.TokenStore
	scopes      []string
	state       string
	logger      *slog.Logger
	out         io.Writer
	openBrowser func(url string) error
}

type FlowOption func(*LocalFlow)

func WithLogger(logger *slog.Logger) FlowOption {
	return func(f *LocalFlow) { f.logger = logger }
}

// WithOutput sets where user instructions are printed.
func WithOutput(w io.Writer) FlowOption {
	return func(f *LocalFlow) { f.out = w }
}

// WithBrowser replaces the function used to open the start URL.
func WithBrowser(open func(url string) error) FlowOption {
	return func(f *LocalFlow) { f.openBrowser = open }
}

func NewLocalFlow(client *moves.Client, store storage.TokenStore, scopes []string, opts ...FlowOption) *LocalFlow {
	f := &LocalFlow{
		client:      client,
		store:       store,
		scopes:      scopes,
		state:       GenerateState(),
		logger:      slog.Default(),
		out:         os.Stderr,
		openBrowser: openBrowser,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run blocks until the callback completes or ctx is done. The token is
// saved to the store before it is returned.
func (f *LocalFlow) Run(ctx context.Context) (*oauth2.Token, error) {
	addr, callbackPath, err := callbackAddr(f.client.Config().RedirectURI)
	if err != nil {
		return nil, err
	}

	resultCh := make(chan tokenResult, 1)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start listener: %w", err)
	}

	server := &http.Server{
		Handler:           f.handler(callbackPath, resultCh),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			deliver(resultCh, tokenResult{err: fmt.Errorf("server error: %w", err)})
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTime)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			f.logger.WarnContext(ctx, "failed to shutdown callback server", xslog.Error(err))
		}
	}()

	startURL := "http://" + listener.Addr().String() + startPath
	f.logger.DebugContext(ctx, "callback server listening", xslog.Addr(listener.Addr().String()))

	_, _ = fmt.Fprintf(f.out, "Opening browser for authorization...\n")
	_, _ = fmt.Fprintf(f.out, "If the browser doesn't open, visit:\n%s\n\n", startURL)

	if err := f.openBrowser(startURL); err != nil {
		_, _ = fmt.Fprintf(f.out, "Failed to open browser: %v\n", err)
	}

	select {
	case result := <-resultCh:
		if result.err != nil {
			return nil, result.err
		}
		if err := f.store.Save(ctx, result.token); err != nil {
			return nil, fmt.Errorf("failed to save token: %w", err)
		}
		return result.token, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *LocalFlow) handler(callbackPath string, resultCh chan<- tokenResult) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+startPath, func(w http.ResponseWriter, r *http.Request) {
		err := f.client.Redirect(w, moves.AuthorizeOptions{
			Scope:       f.scopes,
			State:       f.state,
			RedirectURI: f.client.Config().RedirectURI,
		})
		if err != nil {
			xhttp.Error(w, http.StatusInternalServerError, err.Error())
			deliver(resultCh, tokenResult{err: err})
		}
	})

	pattern := callbackPath
	if pattern == "/" {
		pattern = "/{$}"
	}
	mux.HandleFunc("GET "+pattern, func(w http.ResponseWriter, r *http.Request) {
		token, err := f.handleCallback(w, r)
		if err != nil {
			deliver(resultCh, tokenResult{err: err})
			return
		}
		writeSuccessHTML(w)
		deliver(resultCh, tokenResult{token: token})
	})

	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logger(f.logger),
		middleware.Logging,
		middleware.Recovery,
		middleware.SecurityHeaders,
	)
}

func (f *LocalFlow) handleCallback(w http.ResponseWriter, r *http.Request) (*oauth2.Token, error) {
	query := r.URL.Query()

	if !ValidateState(f.state, query.Get(ParamState)) {
		xhttp.Error(w, http.StatusBadRequest, "invalid state parameter")
		return nil, ErrStateMismatch
	}

	if errParam := query.Get(ParamError); errParam != "" {
		errDesc := query.Get(ParamErrorDescription)
		xhttp.Error(w, http.StatusBadRequest, "authorization "+errParam)
		return nil, fmt.Errorf("%w: %s - %s", ErrAuthorizationDenied, errParam, errDesc)
	}

	code := query.Get(ParamCode)
	if code == "" {
		xhttp.Error(w, http.StatusBadRequest, "missing authorization code")
		return nil, ErrMissingCode
	}

	resp, err := f.client.Token(r.Context(), code)
	if err != nil {
		xhttp.Error(w, http.StatusBadGateway, "failed to exchange authorization code")
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	token, err := DecodeToken(resp)
	if err != nil {
		xhttp.Error(w, http.StatusBadGateway, "failed to exchange authorization code")
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	return token, nil
}

// deliver drops results after the first; the flow only waits for one.
func deliver(ch chan<- tokenResult, result tokenResult) {
	select {
	case ch <- result:
	default:
	}
}

func callbackAddr(redirectURI string) (addr string, path string, err error) {
	if redirectURI == "" {
		return "", "", ErrRedirectURIRequired
	}
	u, err := url.Parse(redirectURI)
	if err != nil {
		return "", "", fmt.Errorf("parsing redirect uri: %w", err)
	}
	if u.Scheme != "http" || u.Hostname() == "" || u.Port() == "" {
		return "", "", ErrRedirectURIRequired
	}

	path = u.Path
	if path == "" {
		path = "/"
	}
	if path == startPath {
		return "", "", fmt.Errorf("redirect uri path %s is reserved for the login page", startPath)
	}
	return u.Host, path, nil
}

func writeSuccessHTML(w http.ResponseWriter) {
	xhttp.SetHeaderContentTypeTextHTML(w)
	_, _ = fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Authorization Successful</title></head>
<body>
<h1>Authorization Successful</h1>
<p>You can close this window and return to the terminal.</p>
</body>
</html>`)
}

func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
