package database

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// MySQLDSN builds the driver DSN. Times are read and written in UTC and
// DATE/DATETIME columns are parsed into time.Time.
func MySQLDSN(opts Options) string {
	cfg := mysql.NewConfig()
	cfg.User = opts.Username
	cfg.Passwd = opts.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))
	cfg.DBName = opts.Name
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN()
}

// OpenMySQL opens and pings a MySQL connection
func OpenMySQL(opts Options) (*sqlx.DB, error) {
	if opts.Host == "" {
		return nil, fmt.Errorf("database host is required")
	}

	db, err := sqlx.Open(DriverMySQL, MySQLDSN(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
