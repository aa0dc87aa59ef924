package validate

import (
	"unicode"
	"unicode/utf8"
)

// Strength grades a password for display next to the signup form.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Strong:
		return "strong"
	case Medium:
		return "medium"
	default:
		return "weak"
	}
}

// PasswordStrength scores one point each for: at least 6 characters, at
// least 10 characters, both lower and upper case letters, a digit, and a
// character that is neither a letter nor a digit.
func PasswordStrength(password string) Strength {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			symbol = true
		}
	}

	n := utf8.RuneCountInString(password)
	score := 0
	for _, ok := range []bool{n >= 6, n >= 10, lower && upper, digit, symbol} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 2:
		return Weak
	case score <= 4:
		return Medium
	default:
		return Strong
	}
}
