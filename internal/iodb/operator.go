// Package iodb implements database operations for the species catalog.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/gnames/gnpest/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewOperator creates a database operator for the given driver
// (without connecting).
func NewOperator(driver string) (db.Operator, error) {
	switch driver {
	case "sqlite":
		return NewSQLiteOperator(), nil
	case "postgres":
		return NewPgxOperator(), nil
	case "mysql":
		return NewMySQLOperator(), nil
	default:
		return nil, UnsupportedDriverError(driver)
	}
}

// gormBase keeps the backend-independent part of the operators.
type gormBase struct {
	driver string
	db     *gorm.DB
}

func (g *gormBase) DB() *gorm.DB {
	return g.db
}

func (g *gormBase) Driver() string {
	return g.driver
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Discard}
}

// TableExists checks if a table exists in the current
// database.
func (g *gormBase) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	tables, err := g.tables(ctx)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return slices.Contains(tables, tableName), nil
}

// HasTables checks if the database has any tables.
func (g *gormBase) HasTables(ctx context.Context) (bool, error) {
	tables, err := g.tables(ctx)
	if err != nil {
		return false, QueryTablesError(err)
	}
	return len(tables) > 0, nil
}

// DropAllTables drops all tables of the database.
func (g *gormBase) DropAllTables(ctx context.Context) error {
	tables, err := g.tables(ctx)
	if err != nil {
		return QueryTablesError(err)
	}

	m := g.db.WithContext(ctx).Migrator()
	for _, table := range tables {
		if err := m.DropTable(table); err != nil {
			return DropTableError(table, err)
		}
		slog.Debug("Dropped table", "table", table)
	}

	return nil
}

// tables lists user tables, leaving out the internal tables of the
// backend.
func (g *gormBase) tables(ctx context.Context) ([]string, error) {
	if g.db == nil {
		return nil, NotConnectedError()
	}

	tables, err := g.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, err
	}

	res := make([]string, 0, len(tables))
	for _, v := range tables {
		if strings.HasPrefix(v, "sqlite_") {
			continue
		}
		res = append(res, v)
	}
	return res, nil
}

// closeGorm closes the sql.DB behind a GORM handle.
func closeGorm(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
