// Package client contains the CLI's building blocks for talking to the
// Pawsome accounts server and for keeping the local profile database.
//
// # Overview
//
//  1. A transport contract (see Client) covering Signup, Login, Session and
//     Logout against the server's form endpoints.
//  2. An HTTP implementation (see HTTPClient) that posts form-encoded bodies,
//     keeps the session cookie in a jar and decodes the JSON reply envelope.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite file and applying the embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. A reply body that is not the JSON
// envelope wraps ErrServerResponse. A well-formed reply with success=false is
// not an error: callers read Reply.Message.
package client
