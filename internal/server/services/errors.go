package services

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/pawsome/internal/common"
)

// Signup rule violations, reported verbatim to the client.
const (
	MsgNameTooShort     = "Name must be at least 3 characters"
	MsgInvalidEmail     = "Invalid email format"
	MsgInvalidPhone     = "Invalid phone number"
	MsgPasswordTooShort = "Password must be at least 6 characters"
	MsgPasswordTooLong  = "Password must be at most 72 bytes"
	MsgPasswordMismatch = "Passwords do not match"
	MsgEmailRegistered  = "Email already registered"
)

// ValidationError lists every rule a signup submission broke, in rule order.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// storageError classifies a repository failure. The "db error" wrapper added
// by the repositories is peeled off so only the driver detail remains.
func storageError(kind, err error) *common.StorageError {
	if inner := errors.Unwrap(err); inner != nil {
		err = inner
	}
	return &common.StorageError{Kind: kind, Err: err}
}
