package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, pool, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		version, err := postgres.Migrate(ctx, pool, slog.Default())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d.\n", version)
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the applied schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, pool, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		version, pending, err := postgres.SchemaStatus(ctx, pool)
		if err != nil {
			return err
		}
		state := "up to date"
		if pending {
			state = "migrations pending"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d, %s.\n", version, state)
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
