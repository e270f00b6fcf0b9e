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
	"errors"
	"fmt"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/internal/iocatalog"
	"github.com/gnames/gnpest/internal/iodb"
	"github.com/gnames/gnpest/pkg/catalog"
	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/db"
	"github.com/gnames/gnpest/pkg/errcode"
)

// connectCatalog creates the operator for the configured driver and
// connects it. The SQLite file defaults to the data directory.
func connectCatalog(ctx context.Context) (db.Operator, error) {
	op, err := iodb.NewOperator(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}

	dbCfg := cfg.Database
	if op.Driver() == "sqlite" {
		dbCfg.Path = cfg.SQLitePath()
	}

	if err = op.Connect(ctx, &dbCfg); err != nil {
		return nil, err
	}

	gn.Info("Connected to catalog: <em>%s</em>", catalogName(&dbCfg))
	return op, nil
}

// openStore connects to an existing catalog and returns its read-only
// store. The operator has to be closed by the caller.
func openStore(ctx context.Context) (db.Operator, catalog.Store, error) {
	if cfg.Database.Driver == "sqlite" {
		path := cfg.SQLitePath()
		if _, err := os.Stat(path); err != nil {
			return nil, nil, emptyCatalogError(path, err)
		}
	}

	op, err := connectCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	exists, err := op.TableExists(ctx, "species")
	if err != nil {
		op.Close()
		return nil, nil, err
	}
	if !exists {
		op.Close()
		return nil, nil, emptyCatalogError(
			catalogName(&cfg.Database),
			errors.New("table species does not exist"),
		)
	}

	store, err := iocatalog.New(op)
	if err != nil {
		op.Close()
		return nil, nil, err
	}
	return op, store, nil
}

func catalogName(dbCfg *config.DatabaseConfig) string {
	if dbCfg.Driver == "sqlite" {
		if dbCfg.Path != "" {
			return dbCfg.Path
		}
		return cfg.SQLitePath()
	}
	return fmt.Sprintf("%s@%s:%d/%s",
		dbCfg.User, dbCfg.Host, dbCfg.Port, dbCfg.Database)
}

func emptyCatalogError(name string, err error) error {
	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg: `<err>Species catalog <em>%s</em> is missing or empty.</err>
   Run <em>'gnpest create'</em> and load species data first.`,
		Vars: []any{name},
		Err:  fmt.Errorf("catalog %s is not usable: %w", name, err),
	}
}
