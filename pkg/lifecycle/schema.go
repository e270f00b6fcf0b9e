// Package lifecycle declares the operations that change the catalog
// database itself, as opposed to the read-only catalog.Store.
package lifecycle

import (
	"context"

	"github.com/gnames/gnpest/pkg/config"
)

// SchemaManager defines the interface for catalog schema management.
// It uses GORM AutoMigrate for both initial schema creation and upgrades.
// Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates the catalog tables and applies byte-wise collation
	// to scientific names. Existing tables must be dropped beforehand
	// with db.Operator.DropAllTables after user confirmation.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates the schema to the latest version without
	// removing existing rows.
	Migrate(ctx context.Context, cfg *config.Config) error
}
