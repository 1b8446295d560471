package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/moves/internal/config"
	"github.com/garrettladley/moves/pkg/moves"
)

func authorizeURLCmd() *cobra.Command {
	var (
		scopes      []string
		state       string
		redirectURI string
	)

	cmd := &cobra.Command{
		Use:   "authorize-url",
		Short: "Print the authorization URL",
		Long:  "Prints the URL a user visits to grant access. Use `moves exchange` with the returned code.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := moves.New(cfg.Moves.ClientConfig())
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			if len(scopes) == 0 {
				scopes = cfg.Moves.Scopes
			}
			if redirectURI == "" {
				redirectURI = client.Config().RedirectURI
			}

			u, err := client.Authorize(moves.AuthorizeOptions{
				Scope:       scopes,
				State:       state,
				RedirectURI: redirectURI,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "scopes to request (default MOVES_SCOPES)")
	cmd.Flags().StringVar(&state, "state", "", "opaque state echoed back to the redirect uri")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "redirect uri (default MOVES_REDIRECT_URI)")

	return cmd
}
