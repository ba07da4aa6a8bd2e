// Package adapter defines the backend boundary of the client core: the
// capability to open a connection from a descriptor, execute opaque SQL
// text, and return either raw rows or an affected-row count. Concrete
// adapters exist for PostgreSQL, MySQL and SQLite; all of them drive a
// single physical connection through database/sql.
package adapter

import "fmt"

// Kind selects a backend implementation. Which backend a session talks to
// is a configuration choice, not a type hierarchy.
type Kind int

const (
	// None means no backend has been selected yet.
	None Kind = iota
	// Postgres selects the PostgreSQL adapter (lib/pq).
	Postgres
	// MySQL selects the MySQL adapter (go-sql-driver/mysql).
	MySQL
	// SQLite selects the SQLite adapter (mattn/go-sqlite3).
	SQLite
)

// String returns the kind name as used in configuration.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Postgres:
		return "postgres"
	case MySQL:
		return "mysql"
	case SQLite:
		return "sqlite"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFromString maps a configuration string to a Kind.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "postgres", "postgresql":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return None, fmt.Errorf("unsupported backend kind: %q", s)
	}
}

// ForKind returns the adapter implementing the given kind.
func ForKind(k Kind) (Adapter, error) {
	switch k {
	case Postgres:
		return postgresAdapter{}, nil
	case MySQL:
		return mysqlAdapter{}, nil
	case SQLite:
		return sqliteAdapter{}, nil
	default:
		return nil, fmt.Errorf("no adapter for backend kind %s", k)
	}
}
