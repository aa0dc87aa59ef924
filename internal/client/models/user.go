// Package models defines client-side data models used by the Pawsome CLI.
package models

// User is the signed-in account as reported by the server and remembered
// locally between CLI runs.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Greeting is the short label shown next to the prompt.
func (u *User) Greeting() string {
	if u == nil || u.Name == "" {
		return ""
	}
	return "Hello, " + u.Name
}
