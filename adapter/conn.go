package adapter

import "context"

// Field is one raw column of a raw row: the backend's column name and the
// datum as the driver produced it (nil, bool, int64, float64, string,
// []byte, time.Time, or a nested []any / RawRow for array and composite
// columns).
type Field struct {
	Name  string
	Value any
}

// RawRow is one undecoded result row in backend column order.
type RawRow []Field

// Adapter opens connections for one backend kind.
type Adapter interface {
	// Kind identifies the backend this adapter speaks to.
	Kind() Kind
	// Open dials the backend described by desc and returns a live
	// connection. The returned Conn owns exactly one physical connection.
	Open(ctx context.Context, desc Descriptor) (Conn, error)
}

// Conn is one live physical connection. It carries one request/response
// stream at a time; callers serialize access.
type Conn interface {
	// Ping performs a lightweight round trip.
	Ping(ctx context.Context) error
	// Exec runs a statement that returns no rows and reports the number of
	// rows affected.
	Exec(ctx context.Context, query string) (int64, error)
	// Query runs a statement that returns rows. A query matching zero rows
	// returns an empty, non-nil slice.
	Query(ctx context.Context, query string) ([]RawRow, error)
	// Close releases the physical connection. The Conn is unusable after.
	Close() error
}
