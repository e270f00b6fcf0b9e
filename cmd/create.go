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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/internal/ioschema"
	"github.com/gnames/gnpest/pkg/db"
	"github.com/gnames/gnpest/pkg/schema"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create species catalog schema",
		Long: `Create the species catalog schema from scratch.

This command:
  1. Connects to the catalog (SQLite file, PostgreSQL or MySQL)
  2. Checks for existing tables and prompts for confirmation
  3. Creates species, taxonomy, location and disease tables
     with their relations using GORM AutoMigrate
  4. Sets binary collation on scientific names

Use --force to skip confirmation and drop existing tables.

Examples:
  gnpest create
  gnpest create --force
  gnpest create --db-driver postgres -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, forceCreate)
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(
	_ *cobra.Command,
	_ []string,
	force bool,
) error {
	ctx := context.Background()

	op, err := connectCatalog(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	ok, err := clearCatalog(ctx, op, force, os.Stdin)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if !ok {
		gn.Info("Aborted. No changes made.")
		return nil
	}

	gn.Info("Creating catalog tables using GORM AutoMigrate...")
	if err = ioschema.NewManager(op).Create(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Catalog <em>%s</em> is ready: %s",
		catalogName(&cfg.Database),
		strings.Join(schema.TableNames(), ", "),
	)
	gn.Info("Load species data, then run " +
		"'<em>gnpest IMAGE</em>' to identify pests")

	return nil
}

// clearCatalog drops existing tables. Without force the user has to
// confirm on stdin. It returns false if the user declined.
func clearCatalog(
	ctx context.Context,
	op db.Operator,
	force bool,
	stdin io.Reader,
) (bool, error) {
	hasTables, err := op.HasTables(ctx)
	if err != nil || !hasTables {
		return err == nil, err
	}

	if !force {
		gn.Warn("\nWarning: Catalog contains existing tables.")
		gn.Warn("Creating schema will drop ALL " +
			"species, taxonomy, distribution and disease data.")
		fmt.Print("\nDo you want to continue? (yes/no): ")

		ok, err := confirm(stdin)
		if err != nil || !ok {
			return false, err
		}
	}

	gn.Info("Dropping all existing tables...")
	if err = op.DropAllTables(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// confirm reads one answer and accepts "yes" or "y" in any case.
func confirm(r io.Reader) (bool, error) {
	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || response == "") {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y", nil
}
