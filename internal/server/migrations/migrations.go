// Package migrations embeds the goose migrations for the postgres database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
