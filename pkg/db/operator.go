package db

import (
	"context"

	"github.com/gnames/gnpest/pkg/config"
	"gorm.io/gorm"
)

// Operator defines the interface for basic catalog database management.
// It owns the connection lifecycle and exposes a *gorm.DB for high-level
// components (SchemaManager, catalog store) to run their queries.
//
// Implementations exist for SQLite, PostgreSQL and MySQL. Everything
// above the operator works with GORM and does not depend on the backend.
type Operator interface {
	// Connect opens a connection to the database and verifies it.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases the database connections.
	Close() error

	// DB returns the GORM handle, or nil when not connected.
	DB() *gorm.DB

	// Driver returns the name of the backend ("sqlite", "postgres", "mysql").
	Driver() string

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables of the database.
	// Used during schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error
}
