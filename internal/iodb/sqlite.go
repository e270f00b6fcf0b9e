package iodb

import (
	"context"
	"os"

	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Pure Go SQLite driver registered as "sqlite".
	_ "modernc.org/sqlite"
)

// sqliteOperator implements db.Operator for a local SQLite
// catalog file.
type sqliteOperator struct {
	gormBase
}

// NewSQLiteOperator creates a new SQLite operator
// (without connecting).
func NewSQLiteOperator() db.Operator {
	return &sqliteOperator{gormBase: gormBase{driver: "sqlite"}}
}

// Connect opens the catalog file at cfg.Path. The file is created
// if it does not exist, so that `gnpest create` can start from
// nothing.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	path := cfg.Path
	if path == "" {
		return ConnectionError(s.driver, path, os.ErrNotExist)
	}

	gdb, err := gorm.Open(
		sqlite.New(sqlite.Config{
			DriverName: "sqlite",
			DSN:        sqliteDSN(path),
		}),
		gormConfig(),
	)
	if err != nil {
		return ConnectionError(s.driver, path, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return ConnectionError(s.driver, path, err)
	}
	// one writer at a time; pragmas stay on the same connection
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return ConnectionError(s.driver, path, err)
	}

	s.db = gdb
	return nil
}

// Close releases the database file.
func (s *sqliteOperator) Close() error {
	err := closeGorm(s.db)
	s.db = nil
	return err
}

func sqliteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
