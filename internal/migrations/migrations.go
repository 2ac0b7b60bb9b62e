// Package migrations embeds the goose migrations for the local SQLite
// database and for the optional Postgres profile store.
package migrations

import "embed"

// Migrations holds both migration sets; the directory selects which one.
//
//go:embed local/*.sql postgres/*.sql
var Migrations embed.FS

const (
	LocalDir    = "local"
	PostgresDir = "postgres"
)
