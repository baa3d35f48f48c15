package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/admin"
	"github.com/connectvan/backend/internal/config"
	"github.com/connectvan/backend/internal/infra"
	"github.com/connectvan/backend/internal/store"
)

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "connectvanctl",
		Short:         "Operate the ConnectVan catalog storage",
		Long:          `connectvanctl migrates the Postgres schema and resets, exports or imports the drivers, partners and hero images collections of the configured storage backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			config.LoadDotEnvUp(8)
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log infrastructure events")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newResetCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
	)
	return cmd
}

func (o *rootOptions) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// catalogSession is an opened backend with the services the commands need.
type catalogSession struct {
	infra *infra.Infra
	store *store.CatalogStore
	svc   *admin.Service
}

func (s *catalogSession) Close() { s.infra.Close() }

func openCatalog(ctx context.Context, opts *rootOptions) (*catalogSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger := opts.logger()
	inf, err := infra.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	cs := store.NewCatalogStore(inf.Backend, logger)
	return &catalogSession{infra: inf, store: cs, svc: admin.NewService(logger, cs)}, nil
}

func openOutput(path string) (*os.File, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
