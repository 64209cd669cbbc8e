package errors

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// ErrHCLParseFailure wraps an hcl.Diagnostics from parsing HCL.
type ErrHCLParseFailure struct {
	Diagnostics hcl.Diagnostics
}

func (e ErrHCLParseFailure) Error() string {
	return fmt.Sprintf("failed to parse HCL: %s", e.Diagnostics.Error())
}

func (e ErrHCLParseFailure) Unwrap() error {
	return e.Diagnostics.Errs()[0]
}

// ErrHCLDecodeFailure wraps an hcl.Diagnostics from decoding HCL bodies.
type ErrHCLDecodeFailure struct {
	Diagnostics hcl.Diagnostics
}

func (e ErrHCLDecodeFailure) Error() string {
	return fmt.Sprintf("failed to decode HCL: %s", e.Diagnostics.Error())
}

func (e ErrHCLDecodeFailure) Unwrap() error {
	return e.Diagnostics.Errs()[0]
}

// ErrJSONDecodeFailure wraps a settings file that is not valid JSON.
type ErrJSONDecodeFailure struct {
	Err error
}

func (e ErrJSONDecodeFailure) Error() string {
	return fmt.Sprintf("failed to decode JSON: %v", e.Err)
}

func (e ErrJSONDecodeFailure) Unwrap() error {
	return e.Err
}

// ErrUnsupportedSettingsFormat is returned for settings files whose extension
// has no parser.
type ErrUnsupportedSettingsFormat struct {
	Path string
}

func (e ErrUnsupportedSettingsFormat) Error() string {
	return fmt.Sprintf("unsupported settings file format: %s (want .hcl or .json)", e.Path)
}

func NewUnsupportedSettingsFormat(path string) error {
	return ErrUnsupportedSettingsFormat{Path: path}
}
