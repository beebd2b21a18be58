package main

import (
	"os"

	"github.com/spf13/cobra"

	"civicpulse/internal/interfaces/cli/classify"
	"civicpulse/internal/interfaces/cli/events"
	"civicpulse/internal/interfaces/cli/migrate"
	"civicpulse/internal/interfaces/cli/server"
	"civicpulse/internal/interfaces/cli/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "civicpulse",
		Short: "CivicPulse - civic complaint routing and tracking",
		Long:  `CivicPulse files citizen complaints, routes them to a department, tracks their resolution and rewards reporters.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		classify.NewCommand(),
		events.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
