package ioidentify

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/pkg/errcode"
)

// ImageError creates an error for a missing or unreadable
// image file.
func ImageError(path string, err error) error {
	msg := `Cannot read image <em>%s</em>

Make sure the path exists and points to a JPEG, PNG or WebP file.`

	return &gn.Error{
		Code: errcode.IdentifyImageError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read image %s: %w", path, err),
	}
}

// ClassifyError creates an error for a failed classification.
// Catalog lookup is skipped for the image.
func ClassifyError(path string, err error) error {
	msg := "Classification of <em>%s</em> failed, lookup is skipped"

	return &gn.Error{
		Code: errcode.IdentifyClassifyError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot classify %s: %w", path, err),
	}
}
