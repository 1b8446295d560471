package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/moves/internal/xslog"
)

func getCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "get <call>",
		Short: "Call an API endpoint",
		Long: "Issues an authenticated GET for call, a path relative to the API base, " +
			"e.g. /user/summary/daily?from=20130101&to=20130107.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			accessToken, err := a.accessToken(ctx)
			if err != nil {
				return err
			}

			call := args[0]
			resp, err := a.client.Get(ctx, call, accessToken)
			if err != nil {
				return fmt.Errorf("failed to call %s: %w", call, err)
			}
			a.logger.DebugContext(ctx, "api call complete", xslog.Call(call), xslog.HTTPStatus(resp.StatusCode))

			if err := resp.Err(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				_, _ = out.Write(resp.Body)
				return nil
			}
			printJSON(out, resp.Body)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the response body without formatting")

	return cmd
}
