package adapter

import (
	"context"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const defaultPostgresPort = 5432

// postgresAdapter speaks to PostgreSQL through lib/pq. The descriptor's
// key=value form is libpq conninfo syntax, so it passes through unchanged.
type postgresAdapter struct{}

func (postgresAdapter) Kind() Kind { return Postgres }

func (postgresAdapter) Open(ctx context.Context, desc Descriptor) (Conn, error) {
	// sslmode is not a descriptor key; lib/pq would otherwise require TLS.
	dsn := desc.withDefaults(defaultPostgresPort).String() + " sslmode=disable"
	return openSQL(ctx, "postgres", dsn)
}
