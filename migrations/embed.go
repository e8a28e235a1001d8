// Package migrations embeds the goose schema files for every supported
// database dialect. Each dialect lives in its own directory.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// SQLite returns the migrations for the embedded SQLite store.
func SQLite() fs.FS {
	return sub("sqlite")
}

// Postgres returns the migrations for the PostgreSQL store.
func Postgres() fs.FS {
	return sub("postgres")
}

func sub(dir string) fs.FS {
	fsys, err := fs.Sub(files, dir)
	if err != nil {
		// dir is a compile-time constant matched by the embed pattern.
		panic(err)
	}
	return fsys
}
