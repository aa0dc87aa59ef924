// Package forms is the CLI's form controller: it pre-validates signup and
// login input with the same rules the server applies, submits the full field
// set in one request and turns the reply into an Outcome.
//
// Local checks only give early feedback. The server re-runs every rule.
package forms

import (
	"strings"

	"github.com/dmitrijs2005/pawsome/internal/validate"
)

// Field names, as posted to the server.
const (
	FieldFullName        = "fullname"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldTerms           = "terms"
	FieldRemember        = "remember"
)

const (
	MsgNameTooShort     = "Name must be at least 3 characters"
	MsgInvalidEmail     = "Please enter a valid email address"
	MsgInvalidPhone     = "Please enter a valid phone number"
	MsgPasswordTooShort = "Password must be at least 6 characters"
	MsgPasswordTooLong  = "Password must be at most 72 bytes"
	MsgPasswordMismatch = "Passwords do not match"
	MsgTermsRequired    = "You must accept the terms and conditions"
)

type SignupForm struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

type LoginForm struct {
	Email    string
	Password string
	Remember bool
}

// FieldError is one failed local check.
type FieldError struct {
	Field   string
	Message string
}

// Validate runs every signup check and reports all failures in field order.
func (f SignupForm) Validate() []FieldError {
	var errs []FieldError
	if !validate.FullName(f.FullName) {
		errs = append(errs, FieldError{FieldFullName, MsgNameTooShort})
	}
	if !validate.Email(strings.TrimSpace(f.Email)) {
		errs = append(errs, FieldError{FieldEmail, MsgInvalidEmail})
	}
	if !validate.Phone(f.Phone) {
		errs = append(errs, FieldError{FieldPhone, MsgInvalidPhone})
	}
	if msg := passwordLength(f.Password); msg != "" {
		errs = append(errs, FieldError{FieldPassword, msg})
	}
	if !validate.PasswordsMatch(f.Password, f.ConfirmPassword) {
		errs = append(errs, FieldError{FieldConfirmPassword, MsgPasswordMismatch})
	}
	if !f.AcceptTerms {
		errs = append(errs, FieldError{FieldTerms, MsgTermsRequired})
	}
	return errs
}

func (f LoginForm) Validate() []FieldError {
	var errs []FieldError
	if !validate.Email(strings.TrimSpace(f.Email)) {
		errs = append(errs, FieldError{FieldEmail, MsgInvalidEmail})
	}
	if msg := passwordLength(f.Password); msg != "" {
		errs = append(errs, FieldError{FieldPassword, msg})
	}
	return errs
}

func passwordLength(p string) string {
	switch {
	case !validate.Password(p):
		return MsgPasswordTooShort
	case !validate.PasswordFits(p):
		return MsgPasswordTooLong
	default:
		return ""
	}
}

// ValidationError carries the local check failures; no request was sent.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}
