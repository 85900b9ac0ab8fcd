// Package migrations embeds the versioned database schema.
package migrations

import "embed"

// FS holds one directory per backend, each with NNN_name.sql files.
//
//go:embed sqlite/*.sql
var FS embed.FS
