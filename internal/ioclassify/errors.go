package ioclassify

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/pkg/errcode"
)

// ModelLoadError creates an error for a model that cannot be
// read or initialized.
func ModelLoadError(path string, err error) error {
	msg := `Cannot load classification model <em>%s</em>

<em>How to fix:</em>
  1. Check classifier.model_path in
     <em>~/.config/gnpest/config.yaml</em>
  2. Make sure the file is a TensorFlow Lite model`

	return &gn.Error{
		Code: errcode.ClassifierModelLoadError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to load model %s: %w", path, err),
	}
}

// LabelsError creates an error for an unreadable class mapping
// or one that does not fit the model output.
func LabelsError(path string, err error) error {
	msg := "Cannot use class mapping <em>%s</em>"

	return &gn.Error{
		Code: errcode.ClassifierLabelsError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to load labels %s: %w", path, err),
	}
}

// ImageError creates an error for an image that cannot be
// decoded.
func ImageError(path string, err error) error {
	msg := "Cannot decode image <em>%s</em>"

	return &gn.Error{
		Code: errcode.ClassifierImageError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to decode image %s: %w", path, err),
	}
}

// InferenceError creates an error for a failed model run.
func InferenceError(path string, err error) error {
	msg := "Classification of <em>%s</em> failed"

	return &gn.Error{
		Code: errcode.ClassifierInferenceError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("inference failed for %s: %w", path, err),
	}
}
