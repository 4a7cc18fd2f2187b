// Package migrations embeds the schema for each supported store.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

const (
	SQLite   = "sqlite/001_create_project.up.sql"
	Postgres = "postgres/001_create_project.up.sql"
)
