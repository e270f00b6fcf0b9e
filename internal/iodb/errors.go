package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/pkg/errcode"
)

// ConnectionError creates an error for database connection
// failures with troubleshooting guidance.
func ConnectionError(
	driver, target string,
	err error,
) error {
	msg := `Cannot connect to <em>%s</em> catalog at <em>%s</em>

<em>Possible causes:</em>
  - Database server is not running
  - Catalog file does not exist or is not readable
  - Wrong credentials or database name

<em>How to fix:</em>
  1. Check the database section of the config file:
     <em>~/.config/gnpest/config.yaml</em>
  2. For SQLite make sure the catalog file exists
  3. Create the schema with <em>gnpest create</em>`

	vars := []any{driver, target}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"failed to connect to %s at %s: %w",
			driver, target, err),
	}
}

// UnsupportedDriverError creates an error for an unknown
// database backend.
func UnsupportedDriverError(driver string) error {
	msg := `Database driver <em>%s</em> is not supported

Use one of: sqlite, postgres, mysql`

	return &gn.Error{
		Code: errcode.DBUnsupportedDriverError,
		Msg:  msg,
		Vars: []any{driver},
		Err:  fmt.Errorf("unsupported database driver %q", driver),
	}
}

// NotConnectedError creates an error for when database
// operation is attempted without connection.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableExistsCheckError creates an error for when
// checking specific table existence fails.
func TableExistsCheckError(tableName string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: []any{tableName},
		Err: fmt.Errorf(
			"failed to check table %s: %w",
			tableName, err),
	}
}

// QueryTablesError creates an error for when querying
// table list fails.
func QueryTablesError(err error) error {
	msg := "Cannot query database tables"

	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// DropTableError creates an error for when dropping a
// table fails.
func DropTableError(tableName string, err error) error {
	msg := "Cannot drop table <em>%s</em>"

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: []any{tableName},
		Err: fmt.Errorf(
			"failed to drop table %s: %w",
			tableName, err),
	}
}
