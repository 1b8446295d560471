package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/moves/internal/oauth"
)

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with Moves",
		Long: "Starts a local server on MOVES_REDIRECT_URI, opens the browser to authorize " +
			"and stores the resulting token.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			flow := oauth.NewLocalFlow(a.client, a.store, a.cfg.Moves.Scopes,
				oauth.WithLogger(a.logger),
				oauth.WithOutput(cmd.ErrOrStderr()),
			)

			token, err := flow.Run(ctx)
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "Authentication successful!")
			printToken(out, token)
			return nil
		},
	}
}
