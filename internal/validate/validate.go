// Package validate holds the account field rules shared by the server
// services and the client form controller.
package validate

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinNameLength     = 3
	MinPasswordLength = 6
	MinPhoneDigits    = 8

	// MaxPasswordBytes is bcrypt's input limit.
	MaxPasswordBytes = 72
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{8,}$`)
)

// FullName reports whether the trimmed name has at least MinNameLength characters.
func FullName(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= MinNameLength
}

// Email reports whether s is a bare local@domain address with a dot in the
// domain part. Display names and angle-bracket forms are rejected.
func Email(s string) bool {
	if !emailPattern.MatchString(s) {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}

// NormalizePhone removes every whitespace character from s.
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Phone reports whether s, once whitespace is removed, is a run of at least
// MinPhoneDigits ASCII digits.
func Phone(s string) bool {
	return phonePattern.MatchString(NormalizePhone(s))
}

func Password(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLength
}

// PasswordFits reports whether s is within MaxPasswordBytes bytes of UTF-8.
func PasswordFits(s string) bool {
	return len(s) <= MaxPasswordBytes
}

func PasswordsMatch(password, confirm string) bool {
	return password == confirm
}
