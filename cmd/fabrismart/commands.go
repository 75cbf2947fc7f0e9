package main

import (
	"fmt"

	"github.com/devanap/fabrismart-full/internal/lib/utils"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the products and employees tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// bootstrap already ensures the schema.
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", a.server.DB.Driver())
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo products and employees, skipping ones that exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.services.Seed.Seed(a.context(cmd.Context()))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %d products and %d employees, skipped %d existing\n",
				result.ProductsCreated, result.EmployeesCreated, result.Skipped)
			return nil
		},
	}
}

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Write every product and employee to a dated JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.services.Backup.Export(a.context(cmd.Context()))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d products, %d employees)\n",
				result.Path, result.Products, result.Employees)
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the inventory and staff report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			report, err := a.services.Stats.Get(a.context(cmd.Context()))
			if err != nil {
				return err
			}

			if asJSON {
				return utils.PrintJSON(cmd.OutOrStdout(), report)
			}
			renderStats(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
