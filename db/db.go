// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Database type constants
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// DB wraps a sql.DB and rebinds ? placeholders to $N when the underlying
// driver is Postgres. All queries in this codebase are written with ?.
type DB struct {
	conn   *sql.DB
	dbType string
}

// Open connects using the configured database type. The DSN is a file
// path (sqlite) or connection string (postgres).
func Open(dbType, dsn string) (*DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite:
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", dbType, err)
	}
	return &DB{conn: conn, dbType: dbType}, nil
}

// Wrap adopts an already-open connection (used by tests).
func Wrap(conn *sql.DB, dbType string) *DB {
	return &DB{conn: conn, dbType: dbType}
}

func (d *DB) Ping() error  { return d.conn.Ping() }
func (d *DB) Close() error { return d.conn.Close() }

func (d *DB) Exec(query string, args ...any) (sql.Result, error) {
	return d.conn.Exec(d.rebind(query), args...)
}

func (d *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return d.conn.Query(d.rebind(query), args...)
}

func (d *DB) QueryRow(query string, args ...any) *sql.Row {
	return d.conn.QueryRow(d.rebind(query), args...)
}

// Begin starts a transaction. The returned Tx rebinds placeholders the
// same way the DB does.
func (d *DB) Begin() (*Tx, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, db: d}, nil
}

// Tx wraps sql.Tx with placeholder rebinding.
type Tx struct {
	tx *sql.Tx
	db *DB
}

func (t *Tx) Exec(query string, args ...any) (sql.Result, error) {
	return t.tx.Exec(t.db.rebind(query), args...)
}

func (t *Tx) QueryRow(query string, args ...any) *sql.Row {
	return t.tx.QueryRow(t.db.rebind(query), args...)
}

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

// rebind rewrites ? placeholders to $1, $2, ... for Postgres. SQLite
// takes ? natively.
func (d *DB) rebind(query string) string {
	if d.dbType != TypePostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsUniqueViolation reports whether err is a UNIQUE constraint failure,
// for either driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
