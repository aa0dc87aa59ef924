// Package profile stores the CLI's local key/value profile (the signed-in
// user and the logged-in flag) in SQLite.
package profile
