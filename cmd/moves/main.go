package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/moves/internal/paths"
	"github.com/garrettladley/moves/internal/version"
)

func main() {
	// the working directory's .env wins; godotenv never overrides a set var
	_ = godotenv.Load()
	if envFile, err := paths.EnvFile(); err == nil {
		_ = godotenv.Load(envFile)
	}

	rootCmd := &cobra.Command{
		Use:          "moves",
		Short:        "Moves API from your terminal",
		Long:         "Authorize against the Moves API, manage the stored token and call API endpoints.",
		Version:      version.Get(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		authCmd(),
		authorizeURLCmd(),
		exchangeCmd(),
		refreshCmd(),
		tokenInfoCmd(),
		getCmd(),
		summaryCmd(),
		logoutCmd(),
		configCmd(),
		migrateCmd(),
	)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
