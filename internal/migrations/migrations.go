// Package migrations embeds the goose SQL migrations that define the
// attendance database schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
