package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/garrettladley/moves/internal/config"
	"github.com/garrettladley/moves/internal/oauth"
	"github.com/garrettladley/moves/internal/storage"
	"github.com/garrettladley/moves/internal/xslog"
	"github.com/garrettladley/moves/pkg/moves"
)

type app struct {
	cfg    config.Config
	logger *slog.Logger
	client *moves.Client
	store  storage.TokenStore
}

// newApp wires config, logger, client and token store. Callers must Close.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	logger := xslog.NewLogger(os.Stderr, cfg.LogLevel)

	client, err := moves.New(cfg.Moves.ClientConfig(),
		moves.WithTimeout(cfg.HTTPTimeout),
		moves.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	opts, err := cfg.TokenStore.StorageOptions()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}
	logger.DebugContext(ctx, "token store opened", xslog.Store(opts.Kind.String()))

	return &app{
		cfg:    cfg,
		logger: logger,
		client: client,
		store:  store,
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close token store", xslog.Error(err))
	}
}

// accessToken returns a valid access token, refreshing the stored one if
// it has expired.
func (a *app) accessToken(ctx context.Context) (string, error) {
	token, err := a.tokenSource().TokenContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w (run `moves auth` first)", err)
	}
	return token.AccessToken, nil
}

func (a *app) tokenSource() *oauth.StoreTokenSource {
	return oauth.NewStoreTokenSource(a.client, a.store)
}
