// Package ioschema implements SchemaManager interface for
// catalog schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/db"
	"github.com/gnames/gnpest/pkg/lifecycle"
	"github.com/gnames/gnpest/pkg/schema"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the catalog schema using GORM AutoMigrate.
// Also applies byte-wise collation to scientific names, so that
// exact lookups do not depend on the server locale.
func (m *manager) Create(
	ctx context.Context,
	_ *config.Config,
) error {
	gormDB := m.operator.DB()
	if gormDB == nil {
		return NotConnectedError()
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(m.operator.Driver(), err)
	}

	if err := m.setCollation(ctx); err != nil {
		return err
	}

	slog.Info("Catalog schema created",
		"driver", m.operator.Driver(),
		"tables", len(schema.TableNames()),
	)
	return nil
}

// Migrate updates the catalog schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(
	ctx context.Context,
	_ *config.Config,
) error {
	gormDB := m.operator.DB()
	if gormDB == nil {
		return NotConnectedError()
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(m.operator.Driver(), err)
	}

	slog.Info("Catalog schema migrated", "driver", m.operator.Driver())
	return nil
}

// setCollation sets binary collation on the scientific name
// column. SQLite compares TEXT with BINARY collation already.
func (m *manager) setCollation(ctx context.Context) error {
	type columnDef struct {
		table, column string
		varchar       int
	}

	columns := []columnDef{
		{"species", "scientific_name", 255},
	}

	for _, col := range columns {
		q, ok := collationSQL(m.operator.Driver(),
			col.table, col.column, col.varchar)
		if !ok {
			return nil
		}
		err := m.operator.DB().WithContext(ctx).Exec(q).Error
		if err != nil {
			return CollationError(col.table, col.column, err)
		}
	}

	return nil
}
