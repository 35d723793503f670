package bankbook

import (
	"errors"
	"fmt"
)

// Domain errors. All of them are recoverable: they are reported to the
// caller as values and the presentation layer decides how to re-prompt.
var (
	// ErrInvalidAmount reports a non-positive amount passed to a deposit,
	// a withdrawal, or an initial deposit.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds reports a withdrawal exceeding the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotFound reports an unknown account identifier.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidCredentials reports a password that does not match the
	// stored credential hash.
	ErrInvalidCredentials = errors.New("incorrect password")
	// ErrNoSession reports an operation that requires a logged-in account.
	ErrNoSession = errors.New("no account logged in")
	// ErrInvalidName reports an account name that cannot survive the
	// unquoted record format.
	ErrInvalidName = errors.New("invalid account name")
)

// StorageError reports a failure reading, parsing, or writing one of the
// record files. It is fatal for the current operation but not for the
// process: the caller should abort the action and let the user retry.
type StorageError struct {
	Op   string // "open", "read", "write", "parse", "rename"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("could not %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// storageErr wraps err into a StorageError for the given operation and file.
func storageErr(op, path string, err error) error {
	return &StorageError{Op: op, Path: path, Err: err}
}
