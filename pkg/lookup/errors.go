package lookup

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/pkg/errcode"
)

// QueryError creates an error for a failed catalog query.
// The relation names the table that could not be read.
func QueryError(name, relation string, err error) error {
	msg := "Cannot read <em>%s</em> of <em>%s</em> from the catalog"

	return &gn.Error{
		Code: errcode.LookupQueryError,
		Msg:  msg,
		Vars: []any{relation, name},
		Err: fmt.Errorf(
			"failed to query %s for %s: %w",
			relation, name, err),
	}
}

// DuplicateSpeciesError creates an error for a scientific name that
// matches more than one species row.
func DuplicateSpeciesError(name string, count int) error {
	msg := `Catalog has <em>%d</em> records for <em>%s</em>

The species table must have one row per scientific name.
Reload the catalog to fix its integrity.`

	return &gn.Error{
		Code: errcode.LookupDuplicateSpeciesError,
		Msg:  msg,
		Vars: []any{count, name},
		Err: fmt.Errorf(
			"%d species rows for %q", count, name),
	}
}
