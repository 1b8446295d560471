package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/moves/internal/config"
	"github.com/garrettladley/moves/internal/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending token store migrations",
		Long:  "Creates or upgrades the schema of the configured sqlite or postgres token store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			opts, err := cfg.TokenStore.StorageOptions()
			if err != nil {
				return err
			}

			// opening a sql backed store applies its migrations
			store, err := storage.Open(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to migrate %s token store: %w", opts.Kind, err)
			}
			defer func() { _ = store.Close() }()

			switch opts.Kind {
			case storage.KindSQLite, storage.KindPostgres, "":
				printSuccess(cmd.OutOrStdout(), "Migrations applied successfully")
			default:
				printField(cmd.OutOrStdout(), "Nothing to migrate for store", opts.Kind)
			}
			return nil
		},
	}
}
