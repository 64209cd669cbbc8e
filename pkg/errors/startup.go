package errors

import "fmt"

// ErrEnvLoad is returned when a dotenv file exists but cannot be parsed.
type ErrEnvLoad struct {
	Path string
	Err  error
}

func (e ErrEnvLoad) Error() string {
	return fmt.Sprintf("cannot load environment file %s: %v", e.Path, e.Err)
}

func (e ErrEnvLoad) Unwrap() error {
	return e.Err
}

func NewErrEnvLoad(path string, err error) error {
	return ErrEnvLoad{Path: path, Err: err}
}

// ErrConfigSetup marks any failure before a command runs: env parsing,
// provider config, settings file or provider construction.
type ErrConfigSetup struct {
	Err error
}

func (e ErrConfigSetup) Error() string {
	return fmt.Sprintf("startup configuration: %v", e.Err)
}

func (e ErrConfigSetup) Unwrap() error {
	return e.Err
}

func NewErrConfigSetup(err error) error {
	return ErrConfigSetup{Err: err}
}

// ErrReadFile carries the path of a settings file that could not be read.
type ErrReadFile struct {
	Path string
	Err  error
}

func (e ErrReadFile) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e ErrReadFile) Unwrap() error {
	return e.Err
}

func NewReadFileError(path string, err error) error {
	return ErrReadFile{Path: path, Err: err}
}
