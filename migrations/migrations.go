// Package migrations embeds the goose SQL migrations for the LogiTrack schema.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed logitrack/*.sql
var embedded embed.FS

// FS returns the migration files rooted at their directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "logitrack")
	if err != nil {
		panic(err)
	}
	return sub
}
