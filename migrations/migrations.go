// Package migrations embeds the schema for the SQL-backed document stores.
package migrations

import "embed"

// FS holds one directory of golang-migrate files per SQL dialect
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Directory names inside FS
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
