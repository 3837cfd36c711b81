package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbweber/homelab/campus/internal/config"
	"github.com/jbweber/homelab/campus/internal/migrations"
)

func newMigrateCmd() *cobra.Command {
	var rollbackTo int64

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations to DB_PATH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := cfg.OpenDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			migrator := migrations.NewSchemaMigrator(db)
			if cmd.Flags().Changed("rollback-to") {
				err = migrator.RollbackTo(rollbackTo)
			} else {
				err = migrator.RunMigrations()
			}
			if err != nil {
				return err
			}

			version, err := migrator.GetCurrentVersion()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return nil
		},
	}
	cmd.Flags().Int64Var(&rollbackTo, "rollback-to", 0, "revert migrations newer than this version instead of applying")
	return cmd
}
