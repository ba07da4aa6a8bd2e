package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// sqlConn drives one physical connection through database/sql. The
// connection is pinned with (*sql.DB).Conn so that transaction-control
// statements and the queries between them share the same wire connection
// instead of being spread across a pool.
type sqlConn struct {
	db   *sql.DB
	conn *sql.Conn
}

func openSQL(ctx context.Context, driver, dsn string) (*sqlConn, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	// One session, one connection.
	db.SetMaxOpenConns(1)
	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("dial %s: %w", driver, err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return &sqlConn{db: db, conn: conn}, nil
}

func (c *sqlConn) Ping(ctx context.Context) error {
	return c.conn.PingContext(ctx)
}

func (c *sqlConn) Exec(ctx context.Context, query string) (int64, error) {
	res, err := c.conn.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		// Statements like DDL may not report a count; that is not a failure.
		return 0, nil
	}
	return n, nil
}

func (c *sqlConn) Query(ctx context.Context, query string) ([]RawRow, error) {
	rows, err := c.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]RawRow, 0, 8)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(RawRow, len(cols))
		for i, name := range cols {
			row[i] = Field{Name: name, Value: vals[i]}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sqlConn) Close() error {
	return errors.Join(c.conn.Close(), c.db.Close())
}
