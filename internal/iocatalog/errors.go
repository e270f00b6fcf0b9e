package iocatalog

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/pkg/errcode"
)

// NotConnectedError creates an error for a store created
// over a closed operator.
func NotConnectedError() error {
	msg := "Catalog query attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to catalog"),
	}
}
