package service

import "errors"

// Error kinds. Match them with errors.Is against a *DataAccessError.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrTransport = errors.New("transport failure")
)

// DataAccessError is returned by every Service operation that fails.
// Msg is human-readable and safe to show to the user.
type DataAccessError struct {
	Op   string
	Kind error
	Msg  string
	Err  error
}

func (e *DataAccessError) Error() string { return e.Msg }

// Unwrap returns the underlying store error, if any.
func (e *DataAccessError) Unwrap() error { return e.Err }

// Is reports whether target is the error's kind.
func (e *DataAccessError) Is(target error) bool { return target == e.Kind }

func notFound(op, msg string) error {
	return &DataAccessError{Op: op, Kind: ErrNotFound, Msg: msg}
}

func conflict(op, msg string) error {
	return &DataAccessError{Op: op, Kind: ErrConflict, Msg: msg}
}

func transport(op, msg string, err error) error {
	return &DataAccessError{Op: op, Kind: ErrTransport, Msg: msg, Err: err}
}
