package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/moves/internal/oauth"
)

func exchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <code>",
		Short: "Exchange an authorization code for a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.client.Token(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to exchange code: %w", err)
			}

			token, err := oauth.DecodeToken(resp)
			if err != nil {
				return fmt.Errorf("failed to exchange code: %w", err)
			}

			if err := a.store.Save(ctx, token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "Token stored.")
			printToken(out, token)
			return nil
		},
	}
}
