package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garrettladley/moves/internal/config"
	"github.com/garrettladley/moves/internal/storage"
	"github.com/garrettladley/moves/pkg/moves"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  "Prints the merged client configuration and token store settings. Secrets are masked.",
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
			opts, err := cfg.TokenStore.StorageOptions()
			if err != nil {
				return err
			}

			mc := client.Config()
			out := cmd.OutOrStdout()

			printHeading(out, "Client")
			printField(out, "OAuth base", mc.OAuthBase)
			printField(out, "API base", mc.APIBase)
			printField(out, "Authorize URL", mc.AuthorizeURL)
			printField(out, "Client ID", mc.ClientID)
			printField(out, "Client secret", mask(mc.ClientSecret))
			printField(out, "Redirect URI", orNone(mc.RedirectURI))
			printField(out, "Scopes", strings.Join(cfg.Moves.Scopes, " "))
			printField(out, "HTTP timeout", cfg.HTTPTimeout)
			printField(out, "Log level", cfg.LogLevel)

			printHeading(out, "Token store")
			printField(out, "Kind", opts.Kind)
			switch opts.Kind {
			case storage.KindSQLite, "":
				printField(out, "Path", opts.SQLitePath)
			case storage.KindRedis:
				printField(out, "URL", mask(opts.RedisURL))
				printField(out, "Key", opts.RedisKey)
			case storage.KindPostgres:
				printField(out, "URL", mask(opts.PostgresURL))
			}
			return nil
		},
	}
}

func mask(s string) string {
	if s == "" {
		return "(none)"
	}
	return "********"
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
