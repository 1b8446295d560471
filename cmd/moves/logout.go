package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			ok, err := a.tokenSource().HasToken(ctx)
			if err != nil {
				return err
			}
			if !ok {
				printError(cmd.ErrOrStderr(), "No token stored.")
				return nil
			}

			if err := a.store.Delete(ctx); err != nil {
				return fmt.Errorf("failed to delete token: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
