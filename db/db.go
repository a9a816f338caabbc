package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Driver picks the database/sql driver for a DB_PATH value. Anything that is
// not a Postgres URL is treated as a SQLite file path.
func Driver(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// Open returns a handle holding at most one connection. Handles are not
// shared between requests; the caller closes it when done.
func Open(dsn string) (*sql.DB, error) {
	driver := Driver(dsn)

	source := dsn
	if driver == DriverSQLite {
		source = sqliteReadOnly(dsn)
	}

	conn, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", driver, err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(5 * time.Minute)

	return conn, nil
}

func sqliteReadOnly(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?mode=ro"
}
