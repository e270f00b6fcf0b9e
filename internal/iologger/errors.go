package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/pkg/errcode"
)

// CreateLogFileError is returned when the log file cannot be opened
// for writing.
func CreateLogFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Cannot create log file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("opening log file %q: %w", path, err),
	}
}
