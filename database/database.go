// Package database opens the relational store used for lead lookups and
// request records.
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Supported drivers
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// Options describes how to reach the database
type Options struct {
	Driver   string
	Host     string
	Port     int
	Name     string
	Username string
	Password string
}

// Open connects with the driver named in opts. The pool is capped at a single
// connection: the handle lives for the whole process and serves one
// invocation at a time.
func Open(opts Options) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch opts.Driver {
	case DriverMySQL:
		db, err = OpenMySQL(opts)
	case DriverSQLite:
		db, err = OpenSQLite(opts.Name)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}
