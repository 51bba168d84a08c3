package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens the local SQLite database file
func OpenSQLite(dataSourceName string) (*sqlx.DB, error) {
	if dataSourceName == "" {
		return nil, fmt.Errorf("database file is required")
	}

	db, err := sqlx.Open(DriverSQLite, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Enable foreign key constraints
	if _, err = db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// InitializeSQLite opens the database file and runs migrations
func InitializeSQLite(dataSourceName string) (*sqlx.DB, error) {
	db, err := Open(Options{Driver: DriverSQLite, Name: dataSourceName})
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
