package main

import (
	"os"

	"github.com/spf13/cobra"

	"opsight/internal/interfaces/cli/migrate"
	"opsight/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "opsight",
		Short: "Opsight - sales analytics aggregation and ranking service",
		Long:  `Opsight serves scoped sales analytics: monthly summaries, daily trends, derived metrics and leaderboards over ingested activity records.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
