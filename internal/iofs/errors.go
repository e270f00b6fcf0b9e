package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/pkg/errcode"
)

// CreateDirError reports a directory that could not be made.
func CreateDirError(dir string, err error) error {
	return fsError(errcode.CreateDirError, "Cannot create %s",
		"cannot create directory", dir, err)
}

// CopyFileError reports a failure to place the default config file.
func CopyFileError(file string, err error) error {
	return fsError(errcode.CopyFileError, "Cannot copy config file to %s",
		"cannot copy file", file, err)
}

// ReadFileError reports a file that exists but cannot be loaded.
func ReadFileError(file string, err error) error {
	return fsError(errcode.ReadFileError, "Cannot read file %s",
		"cannot read file", file, err)
}

// fsError records the function that called the public constructor,
// so the wrapped error points at the failing operation.
func fsError(
	code gn.ErrorCode,
	msg, action, path string,
	err error,
) error {
	name := "unknown"
	if pc, _, _, ok := runtime.Caller(2); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			name = fn.Name()
		}
	}
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: %s: %w", name, action, err),
	}
}
