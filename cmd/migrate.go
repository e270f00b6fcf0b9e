/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/internal/ioschema"
	"github.com/gnames/gnpest/pkg/db"
	"github.com/gnames/gnpest/pkg/schema"
	"github.com/spf13/cobra"
)

// getMigrateCmd returns the migrate command.
func getMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring catalog schema up to date",
		Long: `Migrate adds what a newer GNpest expects to an existing species
catalog and keeps its species, taxonomy, distribution and disease rows
(non-destructive).

GORM AutoMigrate creates missing tables, columns and indexes.
It never removes columns or tables. Tables that were added are listed
after the run.

Run 'gnpest create' instead if the catalog has no tables yet.

Examples:
  gnpest migrate
  gnpest migrate --db-path /data/pests.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args)
		},
	}

	return migrateCmd
}

func runMigrate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op, err := connectCatalog(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	before, err := catalogTables(ctx, op)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(before) == 0 {
		gn.Warn("Catalog <em>%s</em> has no tables, " +
			"run <em>'gnpest create'</em> first.",
			catalogName(&cfg.Database))
		return nil
	}

	if err = ioschema.NewManager(op).Migrate(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	after, err := catalogTables(ctx, op)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	for _, v := range schema.TableNames() {
		if after[v] && !before[v] {
			gn.Info("Added table <em>%s</em>", v)
		}
	}

	gn.Info("Catalog schema is up to date (%d of %d tables).",
		len(after), len(schema.TableNames()))
	return nil
}

// catalogTables returns the catalog tables present in the database.
func catalogTables(
	ctx context.Context,
	op db.Operator,
) (map[string]bool, error) {
	res := make(map[string]bool)
	for _, v := range schema.TableNames() {
		ok, err := op.TableExists(ctx, v)
		if err != nil {
			return nil, err
		}
		if ok {
			res[v] = true
		}
	}
	return res, nil
}
