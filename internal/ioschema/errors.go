package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/pkg/errcode"
)

// NotConnectedError is returned when the operator has no open
// catalog connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Schema operation attempted without catalog connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// CreateSchemaError reports a failed creation of catalog tables.
func CreateSchemaError(driver string, err error) error {
	msg := `Cannot create species catalog tables (<em>%s</em>)

<em>Possible causes:</em>
  - The database user cannot create tables
  - SQLite catalog file is read-only
  - Leftover tables with incompatible columns

<em>How to fix:</em>
  1. Grant CREATE permission or make the file writable
  2. Run <em>'gnpest create --force'</em> to start from scratch
  3. Check database logs for details`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: []any{driver},
		Err:  fmt.Errorf("failed to create %s schema: %w", driver, err),
	}
}

// MigrateSchemaError reports a failed upgrade of catalog tables.
func MigrateSchemaError(driver string, err error) error {
	msg := `Cannot migrate species catalog tables (<em>%s</em>)

<em>Possible causes:</em>
  - Existing rows violate a new constraint, e.g. duplicate names
  - The database user cannot alter tables

<em>How to fix:</em>
  1. Remove duplicate scientific names
  2. Check database user permissions
  3. Back up the catalog and run <em>'gnpest create'</em>`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: []any{driver},
		Err:  fmt.Errorf("failed to migrate %s schema: %w", driver, err),
	}
}

// CollationError reports a failure to make a column compare
// byte by byte.
func CollationError(table, column string, err error) error {
	msg := `Cannot set binary collation on <em>%s.%s</em>

Exact lookups of scientific names would depend on the server locale.

<em>How to fix:</em>
  1. Check database user has ALTER permissions
  2. Remove names that differ only by case or accents`

	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  msg,
		Vars: []any{table, column},
		Err: fmt.Errorf(
			"failed to set collation on %s.%s: %w",
			table, column, err),
	}
}
