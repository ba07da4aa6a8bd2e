package adapter

import (
	"context"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

const defaultMySQLPort = 3306

// mysqlAdapter speaks to MySQL through go-sql-driver/mysql.
type mysqlAdapter struct{}

func (mysqlAdapter) Kind() Kind { return MySQL }

func (mysqlAdapter) Open(ctx context.Context, desc Descriptor) (Conn, error) {
	return openSQL(ctx, "mysql", mysqlDSN(desc))
}

func mysqlDSN(desc Descriptor) string {
	d := desc.withDefaults(defaultMySQLPort)
	cfg := mysql.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
	cfg.DBName = d.DBName
	// Report matched rows for UPDATE, not changed rows.
	cfg.ClientFoundRows = true
	return cfg.FormatDSN()
}
