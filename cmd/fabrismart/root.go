package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fabrismart",
		Short: "Inventory and staff management API",
		Long: `fabrismart keeps a product inventory and an employee roster in one
relational store and serves them over HTTP.

Configuration comes from FABRISMART_* environment variables (or a .env file).
Without a subcommand it starts the HTTP server.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newBackupCmd(),
		newStatsCmd(),
	)

	return root
}
