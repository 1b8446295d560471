package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/garrettladley/moves/internal/oauth"
	"github.com/garrettladley/moves/internal/storage"
	"github.com/garrettladley/moves/internal/xslog"
)

func refreshCmd() *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			var token *oauth2.Token
			if scope == "" {
				token, err = a.tokenSource().Refresh(ctx)
			} else {
				token, err = a.refreshWithScope(ctx, scope)
			}
			if err != nil {
				return fmt.Errorf("failed to refresh token: %w", err)
			}

			a.logger.DebugContext(ctx, "token refreshed", xslog.Expiry(token.Expiry))

			out := cmd.OutOrStdout()
			printSuccess(out, "Token refreshed.")
			printToken(out, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "", "space separated scope to request, e.g. \"activity location\"")

	return cmd
}

func (a *app) refreshWithScope(ctx context.Context, scope string) (*oauth2.Token, error) {
	current, err := a.store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, oauth.ErrNoToken
		}
		return nil, err
	}
	if current.RefreshToken == "" {
		return nil, oauth.ErrTokenExpired
	}

	resp, err := a.client.RefreshTokenWithScope(ctx, current.RefreshToken, scope)
	if err != nil {
		return nil, err
	}
	token, err := oauth.DecodeToken(resp)
	if err != nil {
		return nil, err
	}
	if token.RefreshToken == "" {
		token.RefreshToken = current.RefreshToken
	}

	if err := a.store.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}
	return token, nil
}
