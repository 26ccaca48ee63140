// Package migrations embeds the goose migrations for the on-device sqlite
// database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
