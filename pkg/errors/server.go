package errors

import "fmt"

// ErrServerListen is returned when the HTTP port cannot bind or stops
// serving for any reason other than shutdown.
type ErrServerListen struct {
	Addr string
	Err  error
}

func (e ErrServerListen) Error() string {
	return fmt.Sprintf("http server on %s: %v", e.Addr, e.Err)
}

func (e ErrServerListen) Unwrap() error {
	return e.Err
}

func NewErrServerListen(addr string, err error) error {
	return ErrServerListen{Addr: addr, Err: err}
}

// ErrServerShutdown is returned when in-flight requests outlive the
// shutdown timeout.
type ErrServerShutdown struct {
	Err error
}

func (e ErrServerShutdown) Error() string {
	return fmt.Sprintf("http server did not stop cleanly: %v", e.Err)
}

func (e ErrServerShutdown) Unwrap() error {
	return e.Err
}

func NewErrServerShutdown(err error) error {
	return ErrServerShutdown{Err: err}
}

// ErrInvalidJSON rejects a request body that does not decode.
type ErrInvalidJSON struct {
	Err error
}

func (e ErrInvalidJSON) Error() string {
	return "invalid JSON body: " + e.Err.Error()
}

func (e ErrInvalidJSON) Unwrap() error {
	return e.Err
}

func NewErrInvalidJSON(err error) error {
	return ErrInvalidJSON{Err: err}
}

// ErrAppRun names the inventory operation an HTTP request failed in.
type ErrAppRun struct {
	Operation string
	Err       error
}

func (e ErrAppRun) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e ErrAppRun) Unwrap() error {
	return e.Err
}

func NewErrAppRun(operation string, err error) error {
	return ErrAppRun{Operation: operation, Err: err}
}
