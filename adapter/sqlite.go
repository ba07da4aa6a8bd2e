package adapter

import (
	"context"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// sqliteAdapter speaks to SQLite through mattn/go-sqlite3. The descriptor's
// dbname is the database file path (or ":memory:"); host, port, user and
// password are ignored.
type sqliteAdapter struct{}

func (sqliteAdapter) Kind() Kind { return SQLite }

func (sqliteAdapter) Open(ctx context.Context, desc Descriptor) (Conn, error) {
	return openSQL(ctx, "sqlite3", desc.DBName)
}
