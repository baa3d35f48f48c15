package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/connectvan/backend/internal/admin"
	"github.com/connectvan/backend/internal/catalog"
	"github.com/connectvan/backend/internal/store"
)

var errNotConfirmed = errors.New("refusing to overwrite the catalog without --yes")

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Overwrite all three collections with the seed data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errNotConfirmed
			}
			sess, err := openCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer sess.Close()
			if err := resetCatalog(cmd.Context(), sess.store); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "catalog reset to seed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the overwrite")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup document of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer sess.Close()
			w, closeFn, err := openOutput(out)
			if err != nil {
				return err
			}
			if err := exportCatalog(cmd.Context(), sess.svc, w); err != nil {
				_ = closeFn()
				return err
			}
			return closeFn()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file (- for stdout)")
	return cmd
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the catalog with a backup document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(in)
			if err != nil {
				return err
			}
			defer f.Close()
			sess, err := openCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer sess.Close()
			b, err := importCatalog(cmd.Context(), sess.svc, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d drivers, %d partners, %d hero images\n",
				len(b.Data.Drivers), len(b.Data.Partners), len(b.Data.HeroImages))
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "backup file to import")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func resetCatalog(ctx context.Context, cs *store.CatalogStore) error {
	return cs.Restore(ctx, catalog.Seed())
}

func exportCatalog(ctx context.Context, svc *admin.Service, w io.Writer) error {
	b, err := svc.Export(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

func importCatalog(ctx context.Context, svc *admin.Service, r io.Reader) (admin.Backup, error) {
	b, err := admin.ParseBackup(r)
	if err != nil {
		return admin.Backup{}, err
	}
	return b, svc.Import(ctx, b)
}
