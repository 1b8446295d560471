package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func tokenInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokeninfo [access-token]",
		Short: "Show metadata about an access token",
		Long:  "Queries the token info endpoint for the given token, or the stored one when omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			var accessToken string
			if len(args) == 1 {
				accessToken = args[0]
			} else {
				stored, err := a.store.Load(ctx)
				if err != nil {
					return fmt.Errorf("failed to load token: %w", err)
				}
				accessToken = stored.AccessToken
			}

			resp, err := a.client.TokenInfo(ctx, accessToken)
			if err != nil {
				return fmt.Errorf("failed to fetch token info: %w", err)
			}
			if err := resp.Err(); err != nil {
				return err
			}

			printJSON(cmd.OutOrStdout(), resp.Body)
			return nil
		},
	}
}
