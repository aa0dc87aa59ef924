package models

import "time"

// Account is a registered shopper. PasswordHash holds a bcrypt hash, never
// the plaintext.
type Account struct {
	ID           string
	FullName     string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the server-side login state established by a successful login.
type Session struct {
	UserID       string
	UserFullName string
	UserEmail    string
}

func NewSession(a *Account) Session {
	return Session{
		UserID:       a.ID,
		UserFullName: a.FullName,
		UserEmail:    a.Email,
	}
}

// AccountSummary is the public view of an account returned after login.
type AccountSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewAccountSummary(a *Account) AccountSummary {
	return AccountSummary{ID: a.ID, Name: a.FullName, Email: a.Email}
}
