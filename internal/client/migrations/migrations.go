// Package migrations embeds the schema of the CLI's local profile store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
