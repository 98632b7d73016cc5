// Package migrations embeds the goose migrations for the local backend schema.
package migrations

import "embed"

// FS holds every migration file
//
//go:embed *.sql
var FS embed.FS
