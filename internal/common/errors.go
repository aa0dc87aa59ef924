// Package common defines shared sentinel errors and small helpers used across
// the client and server layers of Pawsome. Callers should use errors.Is and
// errors.As to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Storage failure kinds, carried by StorageError.
	ErrorStorageUnavailable = errors.New("database connection failed")
	ErrorAccountCreate      = errors.New("error creating account")
	ErrorStorage            = errors.New("database error")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Login outcomes.
	ErrorMissingFields     = errors.New("missing fields")
	ErrorInvalidEmail      = errors.New("invalid email format")
	ErrorAccountNotFound   = errors.New("no account found")
	ErrorIncorrectPassword = errors.New("incorrect password")
)

// StorageError reports a failed storage operation. Kind is one of the storage
// sentinels above and Err is the driver error, echoed to clients as detail.
type StorageError struct {
	Kind error
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Detail returns the driver error text, or an empty string.
func (e *StorageError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
