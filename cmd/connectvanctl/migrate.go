package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/connectvan/backend/internal/config"
	"github.com/connectvan/backend/internal/db"
	"github.com/connectvan/backend/internal/migrations"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres migrations (kv_store schema)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			pool, err := db.NewPostgres(cmd.Context(), cfg.Postgres)
			if err != nil {
				return fmt.Errorf("postgres: %w", err)
			}
			defer pool.Close()
			if err := migrations.NewRunner(pool, opts.logger()).Up(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations: up ok")
			if cfg.Storage.Driver != config.StoragePostgres {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: STORAGE_DRIVER is %q, the server will not use this schema\n", cfg.Storage.Driver)
			}
			return nil
		},
	}
}
