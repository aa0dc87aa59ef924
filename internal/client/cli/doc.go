// Package cli implements the interactive Pawsome command-line client.
//
// The CLI is a small REPL over the form controller in package forms:
//
//	signup   create an account (full name, email, phone, password, terms)
//	login    sign in; the returned account is remembered in the local profile
//	whoami   show the remembered account
//	logout   end the server session and forget the local profile
//	help     list commands
//	exit     leave (also: quit)
//
// Passwords are read without echo when stdin is a terminal. Prompts and
// results go to stdout; unexpected failures are logged to stderr.
package cli
