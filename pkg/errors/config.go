package errors

import (
	"fmt"
)

// ErrUnsupportedProvider is returned when the provider string is unknown.
type ErrUnsupportedProvider struct {
	ProviderType string
}

func (e ErrUnsupportedProvider) Error() string {
	return fmt.Sprintf("unsupported provider: %s", e.ProviderType)
}

func NewUnsupportedProvider(pt string) error {
	return ErrUnsupportedProvider{ProviderType: pt}
}

// ErrDebugParse wraps failures parsing the DEBUG env var.
type ErrDebugParse struct {
	RawValue string
	Err      error
}

func (e ErrDebugParse) Error() string {
	return fmt.Sprintf("failed to parse DEBUG=%q: %v", e.RawValue, e.Err)
}

func (e ErrDebugParse) Unwrap() error {
	return e.Err
}

func NewErrDebugParse(raw string, err error) error {
	return ErrDebugParse{RawValue: raw, Err: err}
}

// ErrInvalidLogLevel is returned when LOG_LEVEL is not a zap level name.
type ErrInvalidLogLevel struct {
	RawValue string
}

func (e ErrInvalidLogLevel) Error() string {
	return fmt.Sprintf("invalid LOG_LEVEL=%q: must be one of debug, info, warn, error", e.RawValue)
}

func NewErrInvalidLogLevel(raw string) error {
	return ErrInvalidLogLevel{RawValue: raw}
}

// ErrPortParse wraps failures parsing HTTP_PORT.
type ErrPortParse struct {
	RawValue string
	Err      error
}

func (e ErrPortParse) Error() string {
	return fmt.Sprintf("invalid HTTP_PORT=%q: %v", e.RawValue, e.Err)
}

func (e ErrPortParse) Unwrap() error {
	return e.Err
}

func NewErrPortParse(raw string, err error) error {
	return ErrPortParse{RawValue: raw, Err: err}
}

// ErrPortOutOfRange indicates a port outside 1-65535.
type ErrPortOutOfRange struct {
	Port int
}

func (e ErrPortOutOfRange) Error() string {
	return fmt.Sprintf("port out of bounds: %d (must be 1-65535)", e.Port)
}

func NewErrPortOutOfRange(port int) error {
	return ErrPortOutOfRange{Port: port}
}

// ErrCloudConfigNotInit indicates LoadCloudConfig wasn't called or failed.
type ErrCloudConfigNotInit struct{}

func (e ErrCloudConfigNotInit) Error() string {
	return "cloud configuration not initialized"
}

func NewErrCloudConfigNotInit() error {
	return ErrCloudConfigNotInit{}
}

// ErrMissingCredentials is returned when only one half of a static AWS key
// pair is set.
type ErrMissingCredentials struct {
	Missing []string
}

func (e ErrMissingCredentials) Error() string {
	return fmt.Sprintf(
		"missing AWS credentials: %s",
		e.Missing,
	)
}

// NewErrMissingCredentials constructs an ErrMissingCredentials listing which
// environment variables were empty.
func NewErrMissingCredentials(missing []string) error {
	return ErrMissingCredentials{Missing: missing}
}

// ErrLoadSettings wraps failures loading the settings file at CONFIG_PATH.
type ErrLoadSettings struct {
	Path string
	Err  error
}

func (e ErrLoadSettings) Error() string {
	return fmt.Sprintf("failed to load settings from %s: %v", e.Path, e.Err)
}

func (e ErrLoadSettings) Unwrap() error {
	return e.Err
}

func NewErrLoadSettings(path string, err error) error {
	return ErrLoadSettings{Path: path, Err: err}
}
